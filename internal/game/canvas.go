package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas paints into an offscreen ebiten image at a fixed pixel ratio.
type imageCanvas struct {
	img      *ebiten.Image
	scale    float64
	released bool
}

func (c *imageCanvas) Clear() {
	c.img.Clear()
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA, opacity float64) {
	s := c.scale
	vector.StrokeLine(c.img, float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s), float32(width*s), withOpacity(clr, opacity), true)
}

func (c *imageCanvas) FillCircle(x, y, r float64, clr color.NRGBA, opacity float64) {
	s := c.scale
	vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32(r*s), withOpacity(clr, opacity), true)
}

func (c *imageCanvas) Release() {
	if c.released {
		return
	}
	c.released = true
	c.img.Deallocate()
}
