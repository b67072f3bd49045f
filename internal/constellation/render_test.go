package constellation

import (
	"math"
	"testing"
)

func TestLinkOpacity(t *testing.T) {
	tests := []struct {
		d       float64
		want    float64
		visible bool
	}{
		{0, 0.15, true},
		{20, 0.15 * 0.75, true},
		{60, 0.15 * 0.25, true},
		{79.999, 0.15 * (1 - 79.999/80), true},
		{80, 0, false},
		{120, 0, false},
	}
	for _, tt := range tests {
		got, ok := LinkOpacity(tt.d, 80, 0.15)
		if ok != tt.visible {
			t.Errorf("d=%v: expected visible=%v, got %v", tt.d, tt.visible, ok)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("d=%v: expected opacity %v, got %v", tt.d, tt.want, got)
		}
	}
}

func TestPulseMultiplierBounded(t *testing.T) {
	for phase := -20.0; phase <= 20; phase += 0.01 {
		m := PulseMultiplier(phase)
		if m < 0.6-1e-12 || m > 1.0+1e-12 {
			t.Fatalf("Multiplier %f out of [0.6, 1.0] at phase %f", m, phase)
		}
	}
	if got := PulseMultiplier(math.Pi / 2); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected peak 1.0, got %f", got)
	}
	if got := PulseMultiplier(-math.Pi / 2); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Expected trough 0.6, got %f", got)
	}
}

func TestRenderTwoParticles(t *testing.T) {
	cfg := DefaultConfig()
	particles := []Particle{
		{Pos: Vec2{0, 0}, Radius: 1, BaseOpacity: 0.5, Phase: math.Pi / 2},
		{Pos: Vec2{60, 0}, Radius: 2, BaseOpacity: 0.2, Phase: -math.Pi / 2},
	}
	c := &recordingCanvas{}

	Render(c, particles, cfg)

	if c.clears != 1 {
		t.Errorf("Expected 1 clear, got %d", c.clears)
	}
	if len(c.lines) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(c.lines))
	}
	if want := cfg.LinkOpacity * 0.25; math.Abs(c.lines[0].opacity-want) > 1e-12 {
		t.Errorf("Expected link opacity %f, got %f", want, c.lines[0].opacity)
	}
	if len(c.circles) != 2 {
		t.Fatalf("Expected 2 dots, got %d", len(c.circles))
	}
	if math.Abs(c.circles[0].opacity-0.5) > 1e-12 {
		t.Errorf("Expected first dot at full base opacity, got %f", c.circles[0].opacity)
	}
	if math.Abs(c.circles[1].opacity-0.2*0.6) > 1e-12 {
		t.Errorf("Expected second dot at 60%% of base opacity, got %f", c.circles[1].opacity)
	}
	if c.circles[1].r != 2 {
		t.Errorf("Expected radius 2, got %f", c.circles[1].r)
	}
}

func TestRenderSkipsDistantPairs(t *testing.T) {
	cfg := DefaultConfig()
	particles := []Particle{
		{Pos: Vec2{0, 0}},
		{Pos: Vec2{80, 0}},
		{Pos: Vec2{0, 200}},
	}
	c := &recordingCanvas{}

	Render(c, particles, cfg)

	if len(c.lines) != 0 {
		t.Errorf("Expected no links at or beyond threshold, got %d", len(c.lines))
	}
	if len(c.circles) != 3 {
		t.Errorf("Expected 3 dots, got %d", len(c.circles))
	}
}

func TestRenderLinksEveryClosePairOnce(t *testing.T) {
	cfg := DefaultConfig()
	particles := []Particle{
		{Pos: Vec2{0, 0}},
		{Pos: Vec2{10, 0}},
		{Pos: Vec2{0, 10}},
		{Pos: Vec2{10, 10}},
	}
	c := &recordingCanvas{}

	Render(c, particles, cfg)

	if len(c.lines) != 6 {
		t.Errorf("Expected 6 links for 4 clustered particles, got %d", len(c.lines))
	}
}
