package game

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/madesmac/portfolio/internal/config"
)

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Section is a heading laid out below the hero.
type Section struct {
	Title string
	// Top of the section in viewport coordinates.
	Top float64
	// Heading is the hoverable title box.
	Heading Rect
}

const (
	glyphWidth    = 6
	glyphHeight   = 16
	headingMargin = 48
	headingPad    = 8

	// NavHeight is the height of the bar pinned to the top of the window.
	NavHeight  = 64
	navLinkH   = 32
	navLinkPad = 16

	// a section becomes active once its top is this close to the window top
	activeLine = 100

	// the bar gets a background once the page has scrolled this far
	scrolledAfter = 50

	glideFrequency = 6.0
	glideDamping   = 1.0
)

// HomeLink is the nav entry that returns to the hero.
const HomeLink = "Home"

// Page is the window's view of a long page: the hero fills the first
// viewport and every section below it takes another viewport height.
type Page struct {
	width, height float64
	scroll        float64
	sections      []string

	glide    harmonica.Spring
	gliding  bool
	glideTo  int
	velocity float64
}

func NewPage(sections []string) *Page {
	return &Page{
		sections: sections,
		glide:    harmonica.NewSpring(harmonica.FPS(config.FPS), glideFrequency, glideDamping),
	}
}

// SetViewport resizes the viewport, keeping the scroll position in range.
func (p *Page) SetViewport(w, h float64) {
	p.width, p.height = w, h
	p.setScroll(p.scroll)
}

func (p *Page) Viewport() (float64, float64) {
	return p.width, p.height
}

func (p *Page) ContentHeight() float64 {
	return p.height * float64(1+len(p.sections))
}

// ScrollBy moves the viewport down by dy, clamped to the page.
func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.scroll + dy)
}

// ScrollTo jumps to y, abandoning any glide in progress.
func (p *Page) ScrollTo(y float64) {
	p.gliding = false
	p.setScroll(y)
}

func (p *Page) setScroll(y float64) {
	limit := math.Max(0, p.ContentHeight()-p.height)
	p.scroll = math.Min(math.Max(y, 0), limit)
}

func (p *Page) Scroll() float64 {
	return p.scroll
}

// Hero is the hero section's box in viewport coordinates. It is the
// drawing surface of the backdrop.
func (p *Page) Hero() Rect {
	return Rect{X: 0, Y: -p.scroll, W: p.width, H: p.height}
}

// HeroVisibleRatio is the fraction of the hero inside the viewport.
func (p *Page) HeroVisibleRatio() float64 {
	hero := p.Hero()
	if hero.W <= 0 || hero.H <= 0 {
		return 0
	}
	top := math.Max(hero.Y, 0)
	bottom := math.Min(hero.Y+hero.H, p.height)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / hero.H
}

// InHero reports whether viewport row y lies over the hero.
func (p *Page) InHero(y float64) bool {
	hero := p.Hero()
	return y >= hero.Y && y <= hero.Y+hero.H
}

func (p *Page) Sections() []Section {
	out := make([]Section, len(p.sections))
	for i, title := range p.sections {
		top := p.height*float64(i+1) - p.scroll
		out[i] = Section{
			Title: title,
			Top:   top,
			Heading: Rect{
				X: headingMargin - headingPad,
				Y: top + headingMargin - headingPad,
				W: float64(len(title)*glyphWidth) + 2*headingPad,
				H: glyphHeight + 2*headingPad,
			},
		}
	}
	return out
}

// Scrolled reports whether the nav bar should draw its background.
func (p *Page) Scrolled() bool {
	return p.scroll > scrolledAfter
}

// NavLink is one entry of the nav bar. Index 0 is the hero, index i > 0 the
// i-th section.
type NavLink struct {
	Title  string
	Box    Rect
	Active bool
}

// NavLinks lays the bar's entries out centred in the window.
func (p *Page) NavLinks() []NavLink {
	titles := append([]string{HomeLink}, p.sections...)
	total := 0.0
	for _, t := range titles {
		total += navLinkWidth(t)
	}

	active := p.ActiveSection()
	x := (p.width - total) / 2
	out := make([]NavLink, len(titles))
	for i, t := range titles {
		w := navLinkWidth(t)
		out[i] = NavLink{
			Title:  t,
			Box:    Rect{X: x, Y: (NavHeight - navLinkH) / 2, W: w, H: navLinkH},
			Active: i == active,
		}
		x += w
	}
	return out
}

func navLinkWidth(title string) float64 {
	return float64(len(title)*glyphWidth) + 2*navLinkPad
}

// Logo is the name box at the left of the bar; it links to the hero.
func (p *Page) Logo(name string) Rect {
	return Rect{X: headingMargin - headingPad, Y: (NavHeight - navLinkH) / 2, W: float64(len(name)*glyphWidth) + 2*headingPad, H: navLinkH}
}

// NavLinkAt returns the index of the nav entry under (x, y).
func (p *Page) NavLinkAt(x, y float64) (int, bool) {
	for i, l := range p.NavLinks() {
		if l.Box.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// ActiveSection is the nav index of the last entry whose top has reached
// the active line near the top of the window; 0 while the hero leads.
func (p *Page) ActiveSection() int {
	for i := len(p.sections); i > 0; i-- {
		if p.linkTop(i)-p.scroll <= activeLine {
			return i
		}
	}
	return 0
}

func (p *Page) linkTop(i int) float64 {
	return p.height * float64(i)
}

// GlideTo starts a smooth scroll to nav entry i.
func (p *Page) GlideTo(i int) {
	if i < 0 || i > len(p.sections) {
		return
	}
	p.gliding = true
	p.glideTo = i
	p.velocity = 0
}

func (p *Page) Gliding() bool {
	return p.gliding
}

// Step advances a glide by one frame.
func (p *Page) Step() {
	if !p.gliding {
		return
	}
	target := math.Min(p.linkTop(p.glideTo), math.Max(0, p.ContentHeight()-p.height))
	pos, vel := p.glide.Update(p.scroll, p.velocity, target)
	if math.Abs(pos-target) < 0.5 && math.Abs(vel) < 0.5 {
		pos, vel = target, 0
		p.gliding = false
	}
	p.velocity = vel
	p.setScroll(pos)
}

// Hovering reports whether (x, y) is over an interactive element.
func (p *Page) Hovering(x, y float64) bool {
	if y < NavHeight {
		_, ok := p.NavLinkAt(x, y)
		return ok
	}
	for _, s := range p.Sections() {
		if s.Heading.Contains(x, y) {
			return true
		}
	}
	return false
}
