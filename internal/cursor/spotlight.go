package cursor

import (
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Edge is one grid segment of the spotlight.
type Edge struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
	Opacity        float64
}

type gridLayer struct {
	spacing float64
	offset  float64
	width   float64
	opacity float64
	color   color.NRGBA
}

type gradientStop struct {
	at, value float64
}

// mask stops of the spotlight, from the centre outwards
var spotlightStops = []gradientStop{
	{0, 1},
	{0.15, 0.95},
	{0.35, 0.7},
	{0.6, 0.3},
	{1, 0},
}

// Falloff is the spotlight mask at dist from its centre: piecewise linear
// through spotlightStops, zero at and beyond radius.
func Falloff(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	t := dist / radius
	if t <= 0 {
		return spotlightStops[0].value
	}
	for i := 1; i < len(spotlightStops); i++ {
		a, b := spotlightStops[i-1], spotlightStops[i]
		if t <= b.at {
			return a.value + (b.value-a.value)*(t-a.at)/(b.at-a.at)
		}
	}
	return 0
}

const (
	SpotlightRadius = 350.0

	// spring of the trailing centre: stiffness 150, damping 20, unit mass
	spotlightStiffness = 150.0
	spotlightDamping   = 20.0

	heroCheckInterval = 100 * time.Millisecond
	fadeFrequency     = 12.0
)

// Spotlight reveals a glowing grid around a spring-trailed pointer. It stays
// dark while the pointer is over the hero section.
type Spotlight struct {
	enabled bool
	follow  harmonica.Spring
	fade    harmonica.Spring
	layers  []gridLayer
	radius  float64

	cx, cy    springValue
	opacity   springValue
	primed    bool
	inHero    bool
	lastCheck time.Time
}

func NewSpotlight(fps int, enabled bool) *Spotlight {
	omega := math.Sqrt(spotlightStiffness)
	zeta := spotlightDamping / (2 * omega)

	return &Spotlight{
		enabled: enabled,
		follow:  harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		fade:    harmonica.NewSpring(harmonica.FPS(fps), fadeFrequency, 1),
		radius:  SpotlightRadius,
		inHero:  true,
		layers: []gridLayer{
			{spacing: 45, width: 0.8, opacity: 0.85, color: NRGBA(GridGold)},
			{spacing: 90, offset: 6, width: 1.2, opacity: 0.9 * 0.5, color: NRGBA(GridAmber)},
		},
	}
}

// Update moves the spotlight toward p. inHero reports whether a viewport y
// lies over the hero section; it is consulted at most every 100ms. A nil
// inHero means the page has no hero.
func (s *Spotlight) Update(now time.Time, p Pointer, inHero func(y float64) bool) {
	if !s.enabled {
		return
	}
	if !s.primed {
		s.cx.pos, s.cy.pos = p.X, p.Y
		s.primed = true
	}
	s.cx.step(s.follow, p.X)
	s.cy.step(s.follow, p.Y)

	if inHero == nil {
		s.inHero = false
	} else if now.Sub(s.lastCheck) > heroCheckInterval {
		s.lastCheck = now
		s.inHero = inHero(p.Y)
	}

	target := 0.0
	if p.Inside && !s.inHero {
		target = 1
	}
	s.opacity.step(s.fade, target)
}

// Center is the trailing spotlight centre.
func (s *Spotlight) Center() (float64, float64) {
	return s.cx.pos, s.cy.pos
}

func (s *Spotlight) Opacity() float64 {
	return clamp01(s.opacity.pos)
}

// Edges returns the grid segments lit this frame, each faded by the mask at
// its midpoint.
func (s *Spotlight) Edges() []Edge {
	fade := s.Opacity()
	if !s.enabled || fade < 0.01 {
		return nil
	}
	cx, cy := s.cx.pos, s.cy.pos

	var edges []Edge
	for _, l := range s.layers {
		first := func(v float64) float64 {
			return math.Floor((v-l.offset)/l.spacing)*l.spacing + l.offset
		}
		x0, x1 := first(cx-s.radius), cx+s.radius
		y0, y1 := first(cy-s.radius), cy+s.radius

		for x := x0; x <= x1; x += l.spacing {
			for y := y0; y <= y1; y += l.spacing {
				// top edge of the cell, then its left edge
				edges = s.appendEdge(edges, l, x, y, x+l.spacing, y, fade)
				edges = s.appendEdge(edges, l, x, y, x, y+l.spacing, fade)
			}
		}
	}
	return edges
}

func (s *Spotlight) appendEdge(edges []Edge, l gridLayer, x0, y0, x1, y1, fade float64) []Edge {
	mx, my := (x0+x1)/2, (y0+y1)/2
	a := Falloff(math.Hypot(mx-s.cx.pos, my-s.cy.pos), s.radius) * l.opacity * fade
	if a <= 0 {
		return edges
	}
	return append(edges, Edge{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: l.width, Color: l.color, Opacity: a})
}
