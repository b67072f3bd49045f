package constellation

import (
	"image/color"
	"time"
)

// Config holds the visually tuned constants of the effect. None of them are
// load-bearing; DefaultConfig returns the values the site ships with.
type Config struct {
	MaxParticles   int
	DensityDivisor float64

	MinSpeed float64
	MaxSpeed float64

	// PulseSpeed is added to every particle's phase once per frame.
	PulseSpeed float64

	LinkDistance float64
	LinkOpacity  float64
	LinkWidth    float64

	ResizeDebounce time.Duration
	MaxPixelRatio  float64

	// MinIntersection is the visible fraction of the surface above which it
	// counts as on screen.
	MinIntersection float64

	LinkColor color.NRGBA
	DotColor  color.NRGBA
}

func DefaultConfig() Config {
	return Config{
		MaxParticles:    50,
		DensityDivisor:  25000,
		MinSpeed:        0.1,
		MaxSpeed:        0.4,
		PulseSpeed:      0.02,
		LinkDistance:    80,
		LinkOpacity:     0.15,
		LinkWidth:       0.5,
		ResizeDebounce:  200 * time.Millisecond,
		MaxPixelRatio:   2,
		MinIntersection: 0.01,
		LinkColor:       color.NRGBA{R: 201, G: 165, B: 90, A: 255},
		DotColor:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
