package sheet

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// ParseColor resolves an SVG color name ("grey", "lightgray") or a hex
// triplet ("#c8c8c8", "#ccc") to an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if !strings.HasPrefix(name, "#") {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidConfig, "unknown color %q", s)
	}
	// colorful.Hex scans with Sscanf, which ignores trailing input.
	if n := len(name); n != 4 && n != 7 {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidConfig, "invalid hex color %q", s)
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
