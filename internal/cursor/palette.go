package cursor

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette of the cursor effects.
var (
	White     = mustHex("#FFFFFF")
	Accent    = mustHex("#C9A55A")
	GridGold  = mustHex("#FFD700")
	GridAmber = mustHex("#FFC125")
	SparkGlow = mustHex("#FFE566")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NRGBA converts c to an opaque color.NRGBA.
func NRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ParseHex parses a #rrggbb or #rgb color into an opaque color.NRGBA.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	return NRGBA(c), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
