package scramble

import (
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

const frame = 16 * time.Millisecond

func TestResolvesWithinFrames(t *testing.T) {
	s := New([]string{"Full Stack Developer"}, rand.New(rand.NewSource(1)))
	now := time.Unix(0, 0)

	first := s.Tick(now)
	if utf8.RuneCountInString(first) != len("Full Stack Developer") {
		t.Errorf("Expected a scrambled text of the same length, got %q", first)
	}

	var got string
	for i := 0; i < DefaultFrames+1; i++ {
		now = now.Add(frame)
		got = s.Tick(now)
	}
	if got != "Full Stack Developer" {
		t.Errorf("Expected the text to resolve, got %q", got)
	}
}

func TestRevealsLeftToRight(t *testing.T) {
	target := "Backend Developer"
	s := New([]string{target}, rand.New(rand.NewSource(2)))
	now := time.Unix(0, 0)

	for i := 0; i <= DefaultFrames/2; i++ {
		s.Tick(now)
		now = now.Add(frame)
	}
	got := []rune(s.Tick(now))

	// past the halfway frame the first third is certainly settled
	prefix := []rune(target)[:len(target)/3]
	if !strings.HasPrefix(string(got), string(prefix)) {
		t.Errorf("Expected prefix %q to be revealed, got %q", string(prefix), string(got))
	}
}

func TestCyclesEveryPeriod(t *testing.T) {
	roles := []string{"Data Engineer", "Software Engineer"}
	s := New(roles, rand.New(rand.NewSource(3)))
	now := time.Unix(0, 0)

	s.Tick(now)
	for i := 0; i < 60; i++ {
		now = now.Add(frame)
		s.Tick(now)
	}
	if s.Index() != 0 {
		t.Fatalf("Expected to stay on the first role before the period, got %d", s.Index())
	}

	now = time.Unix(0, 0).Add(DefaultPeriod)
	s.Tick(now)
	if s.Index() != 1 {
		t.Fatalf("Expected the second role after %v, got %d", DefaultPeriod, s.Index())
	}

	var got string
	for i := 0; i < DefaultFrames+1; i++ {
		now = now.Add(frame)
		got = s.Tick(now)
	}
	if got != "Software Engineer" {
		t.Errorf("Expected %q, got %q", "Software Engineer", got)
	}

	s.Tick(now.Add(DefaultPeriod))
	if s.Index() != 0 {
		t.Errorf("Expected to wrap back to the first role, got %d", s.Index())
	}
}

func TestShrinkingText(t *testing.T) {
	s := New([]string{"Database Developer", "Dev"}, rand.New(rand.NewSource(4)))
	now := time.Unix(0, 0)
	for i := 0; i < DefaultFrames+1; i++ {
		s.Tick(now)
		now = now.Add(frame)
	}

	now = time.Unix(0, 0).Add(DefaultPeriod)
	var got string
	for i := 0; i < DefaultFrames+1; i++ {
		got = s.Tick(now)
		if utf8.RuneCountInString(got) > len("Dev") {
			t.Fatalf("Expected at most 3 glyphs while resolving a shorter text, got %q", got)
		}
		now = now.Add(frame)
	}
	if got != "Dev" {
		t.Errorf("Expected %q, got %q", "Dev", got)
	}
}

func TestEmpty(t *testing.T) {
	s := New(nil, nil)
	if got := s.Tick(time.Now()); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}
