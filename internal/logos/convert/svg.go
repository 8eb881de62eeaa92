package convert

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// defaultSize is the raster edge length used when the SVG declares no size.
const defaultSize = 512

// DocSize reads the intrinsic pixel size of an SVG document from the root
// element's width/height attributes, falling back to the viewBox, then to
// defaultSize.
func DocSize(svg []byte) (int, int) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(svg))
	if err != nil {
		return defaultSize, defaultSize
	}

	root := doc.Find("svg").First()
	if root.Length() == 0 {
		return defaultSize, defaultSize
	}

	w := parseDimension(root.AttrOr("width", ""))
	h := parseDimension(root.AttrOr("height", ""))
	if w > 0 && h > 0 {
		return w, h
	}

	// The HTML parser is expected to restore the camel-cased attribute, but
	// accept the lowercased spelling too.
	vb, ok := root.Attr("viewBox")
	if !ok {
		vb, _ = root.Attr("viewbox")
	}
	if parts := strings.Fields(vb); len(parts) == 4 {
		vw, werr := strconv.ParseFloat(parts[2], 64)
		vh, herr := strconv.ParseFloat(parts[3], 64)
		if werr == nil && herr == nil && vw > 0 && vh > 0 {
			return int(vw), int(vh)
		}
	}

	return defaultSize, defaultSize
}

// parseDimension handles plain and px-suffixed lengths. Percentages and other
// units size to the fallback.
func parseDimension(raw string) int {
	s := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(f)
}
