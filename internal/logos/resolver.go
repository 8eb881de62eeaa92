// Package logos maintains the on-disk team logo cache. Raster files are
// write-once: once a usable PNG or JPEG exists for an abbreviation it is
// returned forever, never refreshed.
package logos

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/logos/convert"
)

// downloadTimeout bounds the logo asset fetch. The schedule fetch has no such
// limit; this one exists because a hung asset download would stall every
// remaining team in the refresh.
const downloadTimeout = 20 * time.Second

// rasterExts are the directly displayable formats, in cache-lookup order.
var rasterExts = []string{".png", ".jpg", ".jpeg"}

// Resolver resolves team references to cached raster logo paths. Failures of
// any kind degrade to "no logo"; Resolve never reports an error.
type Resolver struct {
	dir        string
	httpClient *http.Client
	converters []convert.Converter
}

func NewResolver(dir string, converters []convert.Converter) *Resolver {
	return &Resolver{
		dir:        dir,
		httpClient: &http.Client{Timeout: downloadTimeout},
		converters: converters,
	}
}

// Resolve returns the path of a displayable raster logo for the team, or ""
// when none could be produced.
func (r *Resolver) Resolve(ctx context.Context, team nhl.TeamRef) string {
	abbrev := team.Abbrev
	logoURL := team.LogoURL()
	if abbrev == "" || logoURL == "" {
		return ""
	}

	if cached := r.cachedRaster(abbrev); cached != "" {
		return cached
	}

	pngPath := filepath.Join(r.dir, abbrev+".png")
	svgPath := filepath.Join(r.dir, abbrev+".svg")

	// A leftover vector from an earlier run saves the download.
	if _, err := os.Stat(svgPath); err == nil {
		svg, err := os.ReadFile(svgPath)
		if err != nil {
			log.Printf("[logos] Warning: failed to read %s.svg: %v", abbrev, err)
			return ""
		}
		if r.convertSVG(ctx, svg, pngPath, abbrev) {
			return pngPath
		}
		return ""
	}

	content, err := r.download(ctx, logoURL)
	if err != nil {
		log.Printf("[logos] Warning: failed to download logo for %s: %v", abbrev, err)
		return ""
	}

	ext := urlExt(logoURL)
	if ext == ".svg" {
		if r.convertSVG(ctx, content, pngPath, abbrev) {
			return pngPath
		}
	}

	// Conversion failed or the asset is not vector: persist the source as-is.
	srcPath := filepath.Join(r.dir, abbrev+ext)
	if err := os.WriteFile(srcPath, content, 0o644); err != nil {
		log.Printf("[logos] Warning: failed to save logo for %s: %v", abbrev, err)
		return ""
	}

	if isRasterExt(ext) {
		return srcPath
	}
	// Saved, but nothing the display surface can use.
	return ""
}

// cachedRaster returns an existing raster file for the abbreviation, if any.
func (r *Resolver) cachedRaster(abbrev string) string {
	for _, ext := range rasterExts {
		p := filepath.Join(r.dir, abbrev+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// convertSVG tries each converter in priority order, warning and falling
// through on failure.
func (r *Resolver) convertSVG(ctx context.Context, svg []byte, dst, abbrev string) bool {
	if len(r.converters) == 0 {
		log.Printf("[logos] Warning: %s needs conversion but no SVG converter is available", abbrev)
		return false
	}
	for _, conv := range r.converters {
		if err := conv.Convert(ctx, svg, dst); err != nil {
			log.Printf("[logos] Warning: %s conversion failed for %s: %v", conv.Name(), abbrev, err)
			continue
		}
		log.Printf("[logos] Converted %s logo to PNG with %s", abbrev, conv.Name())
		return true
	}
	return false
}

func (r *Resolver) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo request failed: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// urlExt extracts the file extension from the URL path, defaulting to .svg
// for extensionless asset URLs.
func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".svg"
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return ".svg"
	}
	return ext
}

func isRasterExt(ext string) bool {
	for _, r := range rasterExts {
		if ext == r {
			return true
		}
	}
	return false
}
