package constellation

import (
	"errors"
	"image/color"
)

type lineCall struct {
	x0, y0, x1, y1 float64
	opacity        float64
}

type circleCall struct {
	x, y, r float64
	opacity float64
}

// recordingCanvas captures draw calls instead of pixels.
type recordingCanvas struct {
	pixelW, pixelH int
	scale          float64
	clears         int
	lines          []lineCall
	circles        []circleCall
	released       bool
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.lines = nil
	c.circles = nil
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA, opacity float64) {
	c.lines = append(c.lines, lineCall{x0, y0, x1, y1, opacity})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, clr color.NRGBA, opacity float64) {
	c.circles = append(c.circles, circleCall{x, y, r, opacity})
}

func (c *recordingCanvas) Release() {
	c.released = true
}

type fakeHost struct {
	w, h       float64
	attached   bool
	scale      float64
	failCanvas bool

	canvases  []*recordingCanvas
	frames    map[int]func()
	listeners map[int]Listener
	nextID    int
}

func newFakeHost(w, h float64) *fakeHost {
	return &fakeHost{
		w:         w,
		h:         h,
		attached:  true,
		scale:     1,
		frames:    map[int]func(){},
		listeners: map[int]Listener{},
	}
}

func (f *fakeHost) Measure() (float64, float64, bool) {
	return f.w, f.h, f.attached
}

func (f *fakeHost) DeviceScale() float64 { return f.scale }

func (f *fakeHost) NewCanvas(pixelW, pixelH int, scale float64) (Canvas, error) {
	if f.failCanvas {
		return nil, errors.New("no context")
	}
	c := &recordingCanvas{pixelW: pixelW, pixelH: pixelH, scale: scale}
	f.canvases = append(f.canvases, c)
	return c, nil
}

func (f *fakeHost) OnFrame(fn func()) func() {
	id := f.nextID
	f.nextID++
	f.frames[id] = fn
	return func() { delete(f.frames, id) }
}

func (f *fakeHost) Subscribe(l Listener) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = l
	return func() { delete(f.listeners, id) }
}

func (f *fakeHost) tick() {
	for _, fn := range f.frames {
		fn()
	}
}

func (f *fakeHost) resize(w, h float64) {
	f.w, f.h = w, h
	for _, l := range f.listeners {
		l.SurfaceResized()
	}
}

func (f *fakeHost) setForeground(v bool) {
	for _, l := range f.listeners {
		l.ForegroundChanged(v)
	}
}

func (f *fakeHost) setIntersection(r float64) {
	for _, l := range f.listeners {
		l.IntersectionChanged(r)
	}
}

func (f *fakeHost) lastCanvas() *recordingCanvas {
	if len(f.canvases) == 0 {
		return nil
	}
	return f.canvases[len(f.canvases)-1]
}
