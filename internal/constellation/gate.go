package constellation

// GateState is the run state of the visibility gate.
type GateState int

const (
	Suspended GateState = iota
	Running
)

func (s GateState) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Suspended:
		return "SUSPENDED"
	default:
		return "UNKNOWN"
	}
}

// Gate decides whether simulation and painting run this frame. It runs only
// while the surface is on screen and the host is in the foreground.
type Gate struct {
	minRatio   float64
	ratio      float64
	foreground bool
	state      GateState
	onChange   func(GateState)
}

// NewGate starts in the foreground with the surface fully visible, which is
// where a freshly mounted surface sits until the host says otherwise.
func NewGate(minRatio float64, onChange func(GateState)) *Gate {
	g := &Gate{
		minRatio:   minRatio,
		ratio:      1,
		foreground: true,
		onChange:   onChange,
	}
	g.state = g.eval()
	return g
}

func (g *Gate) SetForeground(foreground bool) {
	g.foreground = foreground
	g.update()
}

func (g *Gate) SetIntersection(ratio float64) {
	g.ratio = ratio
	g.update()
}

func (g *Gate) State() GateState {
	return g.state
}

func (g *Gate) Running() bool {
	return g.state == Running
}

func (g *Gate) eval() GateState {
	if g.foreground && g.ratio > 0 && g.ratio >= g.minRatio {
		return Running
	}
	return Suspended
}

func (g *Gate) update() {
	next := g.eval()
	if next == g.state {
		return
	}
	g.state = next
	if g.onChange != nil {
		g.onChange(next)
	}
}
