package game

import (
	"image/color"
	"math"
)

// withOpacity scales clr's alpha by opacity in [0, 1].
func withOpacity(clr color.NRGBA, opacity float64) color.NRGBA {
	clr.A = uint8(math.Round(float64(clr.A) * clamp01(opacity)))
	return clr
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

// centeredX is the x at which a DebugPrint string of n glyphs is centred in
// a box of width w.
func centeredX(w float64, n int) int {
	return int((w - float64(n*glyphWidth)) / 2)
}
