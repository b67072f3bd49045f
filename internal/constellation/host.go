package constellation

import "image/color"

// Canvas is the backing buffer the effect paints into. Coordinates are in
// surface units; the implementation applies the pixel ratio.
type Canvas interface {
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA, opacity float64)
	FillCircle(x, y, r float64, clr color.NRGBA, opacity float64)
	// Release frees the buffer. The canvas is unusable afterwards.
	Release()
}

// Listener receives the environment signals of a mounted effect.
type Listener interface {
	SurfaceResized()
	ForegroundChanged(foreground bool)
	// IntersectionChanged reports the visible fraction of the surface, 0..1.
	IntersectionChanged(ratio float64)
}

// Host is the layout owner the effect is mounted on.
type Host interface {
	// Measure returns the surface size in layout units. ok is false while
	// the surface is not attached.
	Measure() (w, h float64, ok bool)
	DeviceScale() float64
	// NewCanvas allocates a pixelW×pixelH buffer drawn at the given scale.
	NewCanvas(pixelW, pixelH int, scale float64) (Canvas, error)
	// OnFrame registers fn to run once per displayed frame until cancel is
	// called.
	OnFrame(fn func()) (cancel func())
	Subscribe(l Listener) (cancel func())
}
