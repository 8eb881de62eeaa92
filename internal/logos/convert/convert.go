// Package convert rasterizes SVG logos to PNG using whichever converter is
// available in the running environment.
package convert

import "context"

// Converter turns an SVG document into a PNG file at dst.
type Converter interface {
	Name() string

	// Available reports whether the converter can run here. Probed once at
	// startup; subprocess converters check PATH.
	Available() bool

	Convert(ctx context.Context, svg []byte, dst string) error
}

// Detect filters candidates down to the usable ones, preserving the given
// priority order.
func Detect(candidates ...Converter) []Converter {
	var usable []Converter
	for _, c := range candidates {
		if c.Available() {
			usable = append(usable, c)
		}
	}
	return usable
}

// Resolvers returns the converters used during live logo resolution.
func Resolvers() []Converter {
	return Detect(NewOKSVG(), NewRsvg())
}

// All returns every converter candidate, including the headless-browser
// fallback only the batch converter reaches for.
func All() []Converter {
	return Detect(NewOKSVG(), NewRsvg(), NewChrome())
}
