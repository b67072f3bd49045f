package cursor

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
)

// Pointer is the pointer state sampled once per frame.
type Pointer struct {
	X, Y     float64
	Inside   bool
	Hovering bool
}

// Dot is what the follower wants drawn this frame.
type Dot struct {
	X, Y        float64
	Radius      float64
	Opacity     float64
	Color       color.NRGBA
	GlowRadius  float64
	GlowOpacity float64
}

const (
	dotRadius = 6.0

	// transitions of a few frames
	easeFrequency = 25.0
	easeDamping   = 1.0
)

type springValue struct {
	pos, vel float64
}

func (v *springValue) step(s harmonica.Spring, target float64) float64 {
	v.pos, v.vel = s.Update(v.pos, v.vel, target)
	return v.pos
}

// Follower is the custom cursor: a dot pinned to the pointer whose size,
// glow and tint ease toward their hover state.
type Follower struct {
	enabled bool
	ease    harmonica.Spring

	x, y      float64
	scale     springValue
	glowScale springValue
	glowAlpha springValue
	alpha     springValue
	hover     springValue
}

// NewFollower builds a follower for a loop running at fps. A disabled
// follower never draws; it is what coarse pointers get.
func NewFollower(fps int, enabled bool) *Follower {
	return &Follower{
		enabled:   enabled,
		ease:      harmonica.NewSpring(harmonica.FPS(fps), easeFrequency, easeDamping),
		scale:     springValue{pos: 1},
		glowScale: springValue{pos: 1.5},
	}
}

func (f *Follower) Enabled() bool {
	return f.enabled
}

func (f *Follower) Update(p Pointer) {
	if !f.enabled {
		return
	}
	f.x, f.y = p.X, p.Y

	scale, glowScale, glowAlpha, hover := 1.0, 1.5, 0.3, 0.0
	if p.Hovering {
		scale, glowScale, glowAlpha, hover = 1.5, 2.5, 0.6, 1.0
	}
	alpha := 0.0
	if !p.Inside {
		glowAlpha = 0
	} else {
		alpha = 1
	}

	f.scale.step(f.ease, scale)
	f.glowScale.step(f.ease, glowScale)
	f.glowAlpha.step(f.ease, glowAlpha)
	f.alpha.step(f.ease, alpha)
	f.hover.step(f.ease, hover)
}

// Dot returns the shape to draw, or false when nothing is visible.
func (f *Follower) Dot() (Dot, bool) {
	if !f.enabled {
		return Dot{}, false
	}
	alpha := clamp01(f.alpha.pos)
	glowAlpha := clamp01(f.glowAlpha.pos)
	if alpha < 0.01 && glowAlpha < 0.01 {
		return Dot{}, false
	}

	h := clamp01(f.hover.pos)
	return Dot{
		X:           f.x,
		Y:           f.y,
		Radius:      dotRadius * math.Max(f.scale.pos, 0),
		Opacity:     alpha,
		Color:       NRGBA(White.BlendRgb(Accent, h)),
		GlowRadius:  dotRadius * math.Max(f.glowScale.pos, 0),
		GlowOpacity: glowAlpha,
	}, true
}
