package cursor

import (
	"math"
	"testing"
	"time"
)

func TestFalloffStops(t *testing.T) {
	tests := []struct {
		dist, want float64
	}{
		{0, 1},
		{0.15 * 350, 0.95},
		{0.25 * 350, 0.825},
		{0.35 * 350, 0.7},
		{0.6 * 350, 0.3},
		{0.8 * 350, 0.15},
		{350, 0},
		{500, 0},
	}
	for _, tt := range tests {
		got := Falloff(tt.dist, 350)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Falloff(%v): expected %v, got %v", tt.dist, tt.want, got)
		}
	}
	if Falloff(10, 0) != 0 {
		t.Error("Expected a zero radius to light nothing")
	}
}

func TestFollowerDisabled(t *testing.T) {
	f := NewFollower(60, false)
	f.Update(Pointer{X: 10, Y: 10, Inside: true})
	if _, ok := f.Dot(); ok {
		t.Error("Expected a disabled follower to draw nothing")
	}
}

func TestFollowerTracksPointerAndHover(t *testing.T) {
	f := NewFollower(60, true)

	for i := 0; i < 120; i++ {
		f.Update(Pointer{X: 100, Y: 50, Inside: true})
	}
	d, ok := f.Dot()
	if !ok {
		t.Fatal("Expected a visible dot")
	}
	if d.X != 100 || d.Y != 50 {
		t.Errorf("Expected dot at (100, 50), got (%v, %v)", d.X, d.Y)
	}
	if math.Abs(d.Radius-6) > 0.05 || math.Abs(d.GlowOpacity-0.3) > 0.01 {
		t.Errorf("Expected resting radius 6 and glow 0.3, got %v and %v", d.Radius, d.GlowOpacity)
	}
	if d.Color != NRGBA(White) {
		t.Errorf("Expected a white dot, got %v", d.Color)
	}

	for i := 0; i < 120; i++ {
		f.Update(Pointer{X: 100, Y: 50, Inside: true, Hovering: true})
	}
	d, _ = f.Dot()
	if math.Abs(d.Radius-9) > 0.05 || math.Abs(d.GlowRadius-15) > 0.1 || math.Abs(d.GlowOpacity-0.6) > 0.01 {
		t.Errorf("Expected hover radius 9, glow 15 at 0.6, got %v, %v at %v", d.Radius, d.GlowRadius, d.GlowOpacity)
	}
	if d.Color != NRGBA(Accent) {
		t.Errorf("Expected the accent color on hover, got %v", d.Color)
	}

	for i := 0; i < 120; i++ {
		f.Update(Pointer{X: 100, Y: 50, Inside: false})
	}
	if _, ok := f.Dot(); ok {
		t.Error("Expected the dot to fade out once the pointer leaves")
	}
}

func TestSpotlightTrailsPointer(t *testing.T) {
	s := NewSpotlight(60, true)
	now := time.Unix(0, 0)
	notHero := func(float64) bool { return false }

	s.Update(now, Pointer{X: 0, Y: 0, Inside: true}, notHero)
	now = now.Add(16 * time.Millisecond)
	s.Update(now, Pointer{X: 300, Y: 0, Inside: true}, notHero)

	x, _ := s.Center()
	if x <= 0 || x >= 300 {
		t.Errorf("Expected the centre to lag between 0 and 300, got %v", x)
	}

	for i := 0; i < 300; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, Pointer{X: 300, Y: 0, Inside: true}, notHero)
	}
	x, _ = s.Center()
	if math.Abs(x-300) > 0.5 {
		t.Errorf("Expected the centre to settle on 300, got %v", x)
	}
	if s.Opacity() < 0.99 {
		t.Errorf("Expected a fully visible spotlight, got %v", s.Opacity())
	}
	if len(s.Edges()) == 0 {
		t.Error("Expected lit grid edges")
	}
}

func TestSpotlightHiddenOverHero(t *testing.T) {
	s := NewSpotlight(60, true)
	now := time.Unix(0, 0)
	calls := 0
	hero := func(y float64) bool {
		calls++
		return y < 400
	}

	for i := 0; i < 60; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Update(now, Pointer{X: 100, Y: 200, Inside: true}, hero)
	}

	if s.Opacity() > 0.01 || s.Edges() != nil {
		t.Errorf("Expected no spotlight over the hero, got opacity %v", s.Opacity())
	}
	// 600ms of frames at 10ms, checked at most every 100ms
	if calls < 5 || calls > 7 {
		t.Errorf("Expected the hero check to be throttled to ~6 calls, got %d", calls)
	}
}

func TestSpotlightEdgesWithinRadius(t *testing.T) {
	s := NewSpotlight(60, true)
	now := time.Unix(0, 0)
	for i := 0; i < 300; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now, Pointer{X: 500, Y: 500, Inside: true}, nil)
	}

	for _, e := range s.Edges() {
		mx, my := (e.X0+e.X1)/2, (e.Y0+e.Y1)/2
		if math.Hypot(mx-500, my-500) >= SpotlightRadius+0.5 {
			t.Fatalf("Edge midpoint (%v, %v) lies outside the spotlight", mx, my)
		}
		if e.Opacity <= 0 || e.Opacity > 0.85 {
			t.Fatalf("Edge opacity %v out of range", e.Opacity)
		}
	}
}
