package constellation

import (
	"math"
	"math/rand"
)

// Vec2 is a point or displacement in surface space.
type Vec2 struct {
	X, Y float64
}

// Particle is one animated point of the field. Only Pos and Phase evolve
// after creation.
type Particle struct {
	Pos         Vec2
	Vel         Vec2
	Radius      float64
	BaseOpacity float64
	Phase       float64
}

const (
	minRadius  = 0.5
	maxRadius  = 2.0
	minOpacity = 0.1
	maxOpacity = 0.5
)

// newParticle places a particle uniformly on a w×h surface with a random
// heading and a speed in [minSpeed, maxSpeed).
func newParticle(rng *rand.Rand, w, h, minSpeed, maxSpeed float64) Particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := minSpeed + rng.Float64()*(maxSpeed-minSpeed)

	return Particle{
		Pos:         Vec2{X: rng.Float64() * w, Y: rng.Float64() * h},
		Vel:         Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Radius:      minRadius + rng.Float64()*(maxRadius-minRadius),
		BaseOpacity: minOpacity + rng.Float64()*(maxOpacity-minOpacity),
		Phase:       rng.Float64() * 2 * math.Pi,
	}
}

// wrap folds v into [0, size). Leaving one edge re-enters at the opposite one.
func wrap(v, size float64) float64 {
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds to size
	if v >= size {
		v = 0
	}
	return v
}
