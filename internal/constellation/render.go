package constellation

import "math"

// LinkOpacity is the stroke opacity of a link between two particles d apart.
// It falls off linearly from k at d=0 to zero at the threshold; ok is false
// when no link is drawn.
func LinkOpacity(d, threshold, k float64) (opacity float64, ok bool) {
	if threshold <= 0 || d >= threshold {
		return 0, false
	}
	return k * (1 - d/threshold), true
}

// PulseMultiplier maps a pulse phase to an opacity factor in [0.6, 1.0].
func PulseMultiplier(phase float64) float64 {
	return 0.6 + 0.4*(0.5+0.5*math.Sin(phase))
}

// Render paints one frame: proximity links first, then the dots on top.
func Render(c Canvas, particles []Particle, cfg Config) {
	c.Clear()

	limit := cfg.LinkDistance * cfg.LinkDistance
	for i := 0; i < len(particles); i++ {
		a := particles[i].Pos
		for j := i + 1; j < len(particles); j++ {
			b := particles[j].Pos
			dx := a.X - b.X
			dy := a.Y - b.Y
			d2 := dx*dx + dy*dy
			if d2 >= limit {
				continue
			}
			opacity, ok := LinkOpacity(math.Sqrt(d2), cfg.LinkDistance, cfg.LinkOpacity)
			if !ok {
				continue
			}
			c.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.LinkWidth, cfg.LinkColor, opacity)
		}
	}

	for _, p := range particles {
		c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, cfg.DotColor, p.BaseOpacity*PulseMultiplier(p.Phase))
	}
}
