package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/madesmac/portfolio/internal/constellation"
	"github.com/madesmac/portfolio/internal/cursor"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Madesmac — Portfolio"

	FPS = 60

	AccentColor = "#C9A55A"
)

// DefaultRoles are the headline roles cycled in the hero.
var DefaultRoles = []string{
	"Full Stack Developer",
	"Data Engineer",
	"Database Developer",
	"Backend Developer",
	"Software Engineer",
}

// DefaultSections are the headings that follow the hero on the page.
var DefaultSections = []string{
	"About",
	"Skills",
	"Projects",
	"Experience",
	"Certificates",
	"Contact",
}

// Config is the full runtime configuration of the portfolio window.
type Config struct {
	WindowWidth  int
	WindowHeight int

	Constellation constellation.Config
	Capabilities  Capabilities

	Name      string
	Roles     []string
	Sections  []string
	MusicPath string
	ShowHUD   bool
}

func Default() Config {
	return Config{
		WindowWidth:   WindowWidth,
		WindowHeight:  WindowHeight,
		Constellation: constellation.DefaultConfig(),
		Capabilities:  Capabilities{FinePointer: true},
		Name:          "Madesmac",
		Roles:         append([]string(nil), DefaultRoles...),
		Sections:      append([]string(nil), DefaultSections...),
	}
}

// Load returns the defaults overridden by PORTFOLIO_* environment variables.
func Load() Config {
	cfg := Default()
	c := &cfg.Constellation

	cfg.WindowWidth = parseInt(getEnv("PORTFOLIO_WIDTH", ""), cfg.WindowWidth)
	cfg.WindowHeight = parseInt(getEnv("PORTFOLIO_HEIGHT", ""), cfg.WindowHeight)
	cfg.Name = getEnv("PORTFOLIO_NAME", cfg.Name)
	cfg.MusicPath = getEnv("PORTFOLIO_MUSIC", "")
	cfg.ShowHUD = getEnv("PORTFOLIO_HUD", "false") == "true"
	if roles := getEnv("PORTFOLIO_ROLES", ""); roles != "" {
		cfg.Roles = splitList(roles)
	}

	c.MaxParticles = parseInt(getEnv("PORTFOLIO_MAX_PARTICLES", ""), c.MaxParticles)
	c.DensityDivisor = parseFloat(getEnv("PORTFOLIO_DENSITY_DIVISOR", ""), c.DensityDivisor)
	c.LinkDistance = parseFloat(getEnv("PORTFOLIO_LINK_DISTANCE", ""), c.LinkDistance)
	c.LinkOpacity = parseFloat(getEnv("PORTFOLIO_LINK_OPACITY", ""), c.LinkOpacity)
	c.PulseSpeed = parseFloat(getEnv("PORTFOLIO_PULSE_SPEED", ""), c.PulseSpeed)
	c.ResizeDebounce = parseDuration(getEnv("PORTFOLIO_RESIZE_DEBOUNCE", ""), c.ResizeDebounce)
	c.MaxPixelRatio = parseFloat(getEnv("PORTFOLIO_MAX_PIXEL_RATIO", ""), c.MaxPixelRatio)
	c.MinIntersection = parseFloat(getEnv("PORTFOLIO_MIN_INTERSECTION", ""), c.MinIntersection)

	accent := getEnv("PORTFOLIO_ACCENT", AccentColor)
	if clr, err := cursor.ParseHex(accent); err == nil {
		c.LinkColor = clr
	} else {
		log.Printf("[WARN] ignoring invalid accent color %q: %v", accent, err)
	}

	cfg.Capabilities = DetectCapabilities(getEnv("PORTFOLIO_POINTER", ""))

	if c.DensityDivisor <= 0 {
		log.Printf("[WARN] PORTFOLIO_DENSITY_DIVISOR must be positive; the backdrop will be empty")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("[WARN] ignoring invalid integer %q", s)
		return def
	}
	return v
}

func parseFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("[WARN] ignoring invalid number %q", s)
		return def
	}
	return v
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("[WARN] ignoring invalid duration %q", s)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
