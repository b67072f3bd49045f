package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/madesmac/portfolio/internal/constellation"
)

type frameEntry struct {
	id int
	fn func()
}

type listenerEntry struct {
	id int
	l  constellation.Listener
}

// surfaceHost adapts the page's hero section to constellation.Host. It turns
// changes observed between frames into listener signals and runs the frame
// callbacks from Game.Update.
type surfaceHost struct {
	page  *Page
	scale func() float64

	frames    []frameEntry
	listeners []listenerEntry
	nextID    int

	synced     bool
	lastW      float64
	lastH      float64
	lastRatio  float64
	foreground bool

	canvas *imageCanvas
}

func newSurfaceHost(page *Page, scale func() float64) *surfaceHost {
	return &surfaceHost{page: page, scale: scale}
}

func (h *surfaceHost) Measure() (float64, float64, bool) {
	r := h.page.Hero()
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, false
	}
	return r.W, r.H, true
}

func (h *surfaceHost) DeviceScale() float64 {
	if h.scale == nil {
		return 1
	}
	return h.scale()
}

func (h *surfaceHost) NewCanvas(pixelW, pixelH int, scale float64) (constellation.Canvas, error) {
	if pixelW <= 0 || pixelH <= 0 || scale <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d at %vx", pixelW, pixelH, scale)
	}
	c := &imageCanvas{img: ebiten.NewImage(pixelW, pixelH), scale: scale}
	h.canvas = c
	return c, nil
}

func (h *surfaceHost) OnFrame(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.frames = append(h.frames, frameEntry{id: id, fn: fn})
	return func() {
		for i, e := range h.frames {
			if e.id == id {
				h.frames = append(h.frames[:i], h.frames[i+1:]...)
				return
			}
		}
	}
}

func (h *surfaceHost) Subscribe(l constellation.Listener) func() {
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, listenerEntry{id: id, l: l})
	// replay the current state to the newcomer on the next sync
	h.synced = false
	return func() {
		for i, e := range h.listeners {
			if e.id == id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// sync compares the surface with the previous frame and tells listeners what
// changed. The first call only records the starting point.
func (h *surfaceHost) sync(foreground bool) {
	w, ht, _ := h.Measure()
	ratio := h.page.HeroVisibleRatio()

	if !h.synced {
		h.synced = true
		h.lastW, h.lastH, h.lastRatio, h.foreground = w, ht, ratio, foreground
		h.each(func(l constellation.Listener) {
			l.ForegroundChanged(foreground)
			l.IntersectionChanged(ratio)
		})
		return
	}

	if w != h.lastW || ht != h.lastH {
		h.lastW, h.lastH = w, ht
		h.each(func(l constellation.Listener) { l.SurfaceResized() })
	}
	if ratio != h.lastRatio {
		h.lastRatio = ratio
		h.each(func(l constellation.Listener) { l.IntersectionChanged(ratio) })
	}
	if foreground != h.foreground {
		h.foreground = foreground
		h.each(func(l constellation.Listener) { l.ForegroundChanged(foreground) })
	}
}

// tick runs every registered frame callback once.
func (h *surfaceHost) tick() {
	frames := append([]frameEntry(nil), h.frames...)
	for _, e := range frames {
		e.fn()
	}
}

func (h *surfaceHost) each(fn func(constellation.Listener)) {
	listeners := append([]listenerEntry(nil), h.listeners...)
	for _, e := range listeners {
		fn(e.l)
	}
}

// image returns the live backing image and its pixel ratio, if any.
func (h *surfaceHost) image() (*ebiten.Image, float64, bool) {
	if h.canvas == nil || h.canvas.released {
		return nil, 0, false
	}
	return h.canvas.img, h.canvas.scale, true
}
