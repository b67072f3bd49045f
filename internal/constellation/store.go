package constellation

import (
	"math"
	"math/rand"
)

// PopulationCount returns how many particles a w×h surface holds:
// min(maxCount, floor(area/divisor)). Degenerate inputs give zero.
func PopulationCount(w, h float64, maxCount int, divisor float64) int {
	if w <= 0 || h <= 0 || divisor <= 0 || maxCount <= 0 {
		return 0
	}
	n := math.Floor(w * h / divisor)
	if n >= float64(maxCount) {
		return maxCount
	}
	return int(n)
}

// Store owns the particle population of one surface.
type Store struct {
	particles []Particle
	width     float64
	height    float64
	phaseStep float64
}

// Initialize discards the current population and creates a new one sized
// for a w×h surface.
func (s *Store) Initialize(rng *rand.Rand, w, h float64, cfg Config) {
	n := PopulationCount(w, h, cfg.MaxParticles, cfg.DensityDivisor)

	s.width = w
	s.height = h
	s.phaseStep = cfg.PulseSpeed
	s.particles = make([]Particle, n)
	for i := range s.particles {
		s.particles[i] = newParticle(rng, w, h, cfg.MinSpeed, cfg.MaxSpeed)
	}
}

// Step advances every particle by one frame. When allowed is false nothing
// moves.
func (s *Store) Step(allowed bool) {
	if !allowed || s.width <= 0 || s.height <= 0 {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X = wrap(p.Pos.X+p.Vel.X, s.width)
		p.Pos.Y = wrap(p.Pos.Y+p.Vel.Y, s.height)
		p.Phase += s.phaseStep
	}
}

// Particles exposes the current population. Callers must not retain it across
// an Initialize.
func (s *Store) Particles() []Particle {
	return s.particles
}

func (s *Store) Len() int {
	return len(s.particles)
}

// Size returns the surface dimensions the population was built for.
func (s *Store) Size() (float64, float64) {
	return s.width, s.height
}
