package constellation

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// Effect is one mounted constellation backdrop. It owns the particle store,
// the backing canvas, the frame registration and every host listener, and
// gives them all back on Unmount.
type Effect struct {
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	notify func(GateState)

	host    Host
	canvas  Canvas
	store   Store
	gate    *Gate
	resize  *ResizeReactor
	release []func()
}

type Option func(*Effect)

// WithRand fixes the random source, for reproducible populations.
func WithRand(rng *rand.Rand) Option {
	return func(e *Effect) { e.rng = rng }
}

func WithClock(now func() time.Time) Option {
	return func(e *Effect) { e.now = now }
}

// WithStateObserver is told about every gate transition.
func WithStateObserver(fn func(GateState)) Option {
	return func(e *Effect) { e.notify = fn }
}

func New(cfg Config, opts ...Option) *Effect {
	e := &Effect{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.resize = NewResizeReactor(cfg.ResizeDebounce)
	return e
}

// Mount attaches the effect to h and starts animating. Mounting an already
// mounted effect moves it to the new host.
func (e *Effect) Mount(h Host) {
	if e.host != nil {
		e.Unmount()
	}
	e.host = h
	e.gate = NewGate(e.cfg.MinIntersection, e.gateChanged)

	e.release = append(e.release, h.Subscribe(listener{e}))
	e.release = append(e.release, h.OnFrame(e.frame))

	e.rebuild()
	log.Printf("[INFO] constellation mounted: %d particles", e.store.Len())
}

// Unmount stops the frame loop and releases every listener and the canvas.
func (e *Effect) Unmount() {
	if e.host == nil {
		return
	}
	for i := len(e.release) - 1; i >= 0; i-- {
		e.release[i]()
	}
	e.release = nil
	e.resize.Cancel()
	if e.canvas != nil {
		e.canvas.Release()
		e.canvas = nil
	}
	e.host = nil
	log.Printf("[INFO] constellation unmounted")
}

func (e *Effect) Mounted() bool {
	return e.host != nil
}

// State is the current gate state; an unmounted effect is suspended.
func (e *Effect) State() GateState {
	if e.gate == nil || e.host == nil {
		return Suspended
	}
	return e.gate.State()
}

// Particles is a read-only view of the current frame's population.
func (e *Effect) Particles() []Particle {
	return e.store.Particles()
}

func (e *Effect) frame() {
	if e.host == nil {
		return
	}
	// a suspended surface keeps its last frame; a resize that came due in
	// the meantime is taken on the first running frame
	if !e.gate.Running() {
		return
	}
	if e.resize.Due(e.now()) {
		e.rebuild()
	}
	e.store.Step(true)
	if e.canvas != nil {
		Render(e.canvas, e.store.Particles(), e.cfg)
	}
}

// rebuild re-measures the surface, reallocates the canvas and repopulates.
// An unmeasurable or empty surface leaves everything as it was.
func (e *Effect) rebuild() {
	w, h, ok := e.host.Measure()
	if !ok || w <= 0 || h <= 0 {
		return
	}

	scale := e.host.DeviceScale()
	if scale <= 0 {
		scale = 1
	}
	if e.cfg.MaxPixelRatio > 0 && scale > e.cfg.MaxPixelRatio {
		scale = e.cfg.MaxPixelRatio
	}

	if e.canvas != nil {
		e.canvas.Release()
		e.canvas = nil
	}
	c, err := e.host.NewCanvas(int(math.Ceil(w*scale)), int(math.Ceil(h*scale)), scale)
	if err != nil {
		log.Printf("[WARN] constellation: no canvas, rendering disabled: %v", err)
	} else {
		e.canvas = c
	}

	e.store.Initialize(e.rng, w, h, e.cfg)
}

func (e *Effect) gateChanged(s GateState) {
	if e.notify != nil {
		e.notify(s)
	}
}

// listener keeps the Listener methods off Effect's public surface.
type listener struct {
	e *Effect
}

func (l listener) SurfaceResized() {
	if l.e.host == nil {
		return
	}
	l.e.resize.Notify(l.e.now())
}

func (l listener) ForegroundChanged(foreground bool) {
	if l.e.host == nil {
		return
	}
	l.e.gate.SetForeground(foreground)
}

func (l listener) IntersectionChanged(ratio float64) {
	if l.e.host == nil {
		return
	}
	l.e.gate.SetIntersection(ratio)
}
