package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/madesmac/portfolio/internal/ambient"
	"github.com/madesmac/portfolio/internal/config"
	"github.com/madesmac/portfolio/internal/constellation"
	"github.com/madesmac/portfolio/internal/cursor"
	"github.com/madesmac/portfolio/internal/scramble"
)

const (
	arrowScrollStep = 12
	wheelScrollStep = 40
)

var (
	background = color.NRGBA{R: 10, G: 10, B: 12, A: 255}
	sectionBg  = color.NRGBA{R: 16, G: 16, B: 20, A: 255}

	availableGreen = color.NRGBA{R: 34, G: 197, B: 94, A: 255}
)

// Game is the portfolio window: the constellation backdrop in the hero, the
// section headings below it and the cursor effects on top.
type Game struct {
	cfg    config.Config
	page   *Page
	host   *surfaceHost
	effect *constellation.Effect

	follower  *cursor.Follower
	spotlight *cursor.Spotlight
	headline  *scramble.Scrambler
	music     *ambient.Player

	headlineText string
	prevKey      map[ebiten.Key]bool
	outsideW     int
	outsideH     int
}

// New builds the window state. music may be nil.
func New(cfg config.Config, music *ambient.Player) *Game {
	g := &Game{
		cfg:       cfg,
		page:      NewPage(cfg.Sections),
		music:     music,
		follower:  cursor.NewFollower(config.FPS, cfg.Capabilities.FinePointer),
		spotlight: cursor.NewSpotlight(config.FPS, cfg.Capabilities.FinePointer),
		headline:  scramble.New(cfg.Roles, rand.New(rand.NewSource(time.Now().UnixNano()))),
		prevKey:   map[ebiten.Key]bool{},
	}
	g.host = newSurfaceHost(g.page, func() float64 {
		return ebiten.Monitor().DeviceScaleFactor()
	})
	g.effect = constellation.New(cfg.Constellation, constellation.WithStateObserver(func(s constellation.GateState) {
		g.music.SetPaused(s != constellation.Running)
	}))
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.page.SetViewport(float64(g.outsideW), float64(g.outsideH))
	g.handleNav()
	g.handleScroll()
	g.page.Step()

	if !g.effect.Mounted() {
		if _, _, ok := g.host.Measure(); ok {
			g.effect.Mount(g.host)
		}
	}

	g.host.sync(ebiten.IsFocused() && !ebiten.IsWindowMinimized())
	g.host.tick()

	now := time.Now()
	p := g.pointer()
	g.follower.Update(p)
	g.spotlight.Update(now, p, g.page.InHero)
	g.headlineText = g.headline.Tick(now)

	return nil
}

func (g *Game) handleScroll() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.page.ScrollBy(-dy * wheelScrollStep)
	}

	_, h := g.page.Viewport()
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.page.ScrollBy(arrowScrollStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.page.ScrollBy(-arrowScrollStep)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.page.ScrollBy(h * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.page.ScrollBy(-h * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.page.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.page.ScrollTo(g.page.ContentHeight())
	}
}

var navKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleNav glides to a section on a nav bar click, a digit key or Tab.
func (g *Game) handleNav() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		fx, fy := float64(x), float64(y)
		if i, ok := g.page.NavLinkAt(fx, fy); ok {
			g.page.GlideTo(i)
		} else if g.page.Logo(g.cfg.Name).Contains(fx, fy) {
			g.page.GlideTo(0)
		}
	}

	for i, k := range navKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.page.GlideTo(i)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.page.GlideTo(g.page.ActiveSection() - 1)
		} else {
			g.page.GlideTo(g.page.ActiveSection() + 1)
		}
	}
}

func (g *Game) pointer() cursor.Pointer {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	w, h := g.page.Viewport()
	inside := ebiten.IsFocused() && fx >= 0 && fy >= 0 && fx < w && fy < h
	return cursor.Pointer{
		X:        fx,
		Y:        fy,
		Inside:   inside,
		Hovering: inside && g.page.Hovering(fx, fy),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.drawHero(screen)
	g.drawSections(screen)
	g.drawSpotlight(screen)
	g.drawNav(screen)

	if g.cfg.ShowHUD {
		hud := fmt.Sprintf("particles: %d  state: %s  fps: %.0f",
			len(g.effect.Particles()), g.effect.State(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, hud, 12, NavHeight+4)
	}
	g.drawCursor(screen)
}

func (g *Game) drawNav(screen *ebiten.Image) {
	w, _ := g.page.Viewport()
	accent := g.cfg.Constellation.LinkColor

	if g.page.Scrolled() {
		vector.DrawFilledRect(screen, 0, 0, float32(w), NavHeight, withOpacity(background, 0.8), false)
		vector.StrokeLine(screen, 0, NavHeight, float32(w), NavHeight, 1, withOpacity(accent, 0.1), false)
	}

	logo := g.page.Logo(g.cfg.Name)
	ebitenutil.DebugPrintAt(screen, g.cfg.Name, int(logo.X+headingPad), int(logo.Y+(logo.H-glyphHeight)/2))

	for _, l := range g.page.NavLinks() {
		b := l.Box
		if l.Active {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), accent, true)
		}
		ebitenutil.DebugPrintAt(screen, l.Title, int(b.X+navLinkPad), int(b.Y+(b.H-glyphHeight)/2))
	}

	status := "Available"
	sx := int(w) - headingMargin - len(status)*glyphWidth
	vector.DrawFilledCircle(screen, float32(sx-10), NavHeight/2, 4, availableGreen, true)
	ebitenutil.DebugPrintAt(screen, status, sx, (NavHeight-glyphHeight)/2)
}

func (g *Game) drawHero(screen *ebiten.Image) {
	hero := g.page.Hero()
	if g.page.HeroVisibleRatio() == 0 {
		return
	}

	if img, scale, ok := g.host.image(); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1/scale, 1/scale)
		op.GeoM.Translate(hero.X, hero.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	cy := hero.Y + hero.H/2
	greeting := "Hello, I'm"
	ebitenutil.DebugPrintAt(screen, greeting, centeredX(hero.W, len(greeting)), int(cy)-40)
	ebitenutil.DebugPrintAt(screen, g.cfg.Name, centeredX(hero.W, len(g.cfg.Name)), int(cy)-16)
	n := len([]rune(g.headlineText))
	ebitenutil.DebugPrintAt(screen, g.headlineText, centeredX(hero.W, n), int(cy)+8)

	hint := "SCROLL"
	ebitenutil.DebugPrintAt(screen, hint, centeredX(hero.W, len(hint)), int(hero.Y+hero.H)-48)
}

func (g *Game) drawSections(screen *ebiten.Image) {
	w, h := g.page.Viewport()
	accent := g.cfg.Constellation.LinkColor

	for _, s := range g.page.Sections() {
		if s.Top >= h || s.Top+h <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, 0, float32(s.Top), float32(w), float32(h), sectionBg, false)
		vector.StrokeLine(screen, 0, float32(s.Top), float32(w), float32(s.Top), 1, withOpacity(accent, 0.3), false)

		hd := s.Heading
		ebitenutil.DebugPrintAt(screen, s.Title, int(hd.X+headingPad), int(hd.Y+headingPad))
		y := float32(hd.Y + hd.H)
		vector.StrokeLine(screen, float32(hd.X+headingPad), y, float32(hd.X+hd.W-headingPad), y, 2, accent, true)
	}
}

func (g *Game) drawSpotlight(screen *ebiten.Image) {
	for _, e := range g.spotlight.Edges() {
		vector.StrokeLine(screen, float32(e.X0), float32(e.Y0), float32(e.X1), float32(e.Y1),
			float32(e.Width), withOpacity(e.Color, e.Opacity), true)
	}
	if a := g.spotlight.Opacity(); a > 0.01 {
		x, y := g.spotlight.Center()
		vector.DrawFilledCircle(screen, float32(x), float32(y), 80, withOpacity(cursor.NRGBA(cursor.SparkGlow), 0.4*0.5*a), true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 20, withOpacity(cursor.NRGBA(cursor.SparkGlow), 0.15*a), true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	d, ok := g.follower.Dot()
	if !ok {
		return
	}
	vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.GlowRadius), withOpacity(d.Color, d.GlowOpacity), true)
	vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), withOpacity(d.Color, d.Opacity), true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close tears the backdrop down and stops the music.
func (g *Game) Close() error {
	g.effect.Unmount()
	return g.music.Close()
}
