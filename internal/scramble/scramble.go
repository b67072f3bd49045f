// Package scramble animates a headline that cycles through a list of texts,
// resolving each new text left to right out of random glyphs.
package scramble

import (
	"math/rand"
	"time"
)

const (
	Glyphs        = `!<>-_\/[]{}—=+*^?#________`
	DefaultFrames = 30
	DefaultPeriod = 3 * time.Second
)

type Scrambler struct {
	texts  [][]rune
	glyphs []rune
	frames int
	period time.Duration
	rng    *rand.Rand

	index   int
	display []rune
	target  []rune
	length  int
	frame   int
	active  bool
	started bool
	changed time.Time
}

func New(texts []string, rng *rand.Rand) *Scrambler {
	s := &Scrambler{
		glyphs: []rune(Glyphs),
		frames: DefaultFrames,
		period: DefaultPeriod,
		rng:    rng,
	}
	for _, t := range texts {
		s.texts = append(s.texts, []rune(t))
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Tick advances the animation by one frame and returns the text to show.
func (s *Scrambler) Tick(now time.Time) string {
	if len(s.texts) == 0 {
		return ""
	}
	if !s.started {
		s.started = true
		s.changed = now
		s.begin(s.texts[0])
	} else if !now.Before(s.changed.Add(s.period)) {
		s.changed = now
		s.index = (s.index + 1) % len(s.texts)
		s.begin(s.texts[s.index])
	}

	if s.active {
		s.render()
	}
	return string(s.display)
}

// Index is the position of the text currently shown or resolving.
func (s *Scrambler) Index() int {
	return s.index
}

func (s *Scrambler) begin(next []rune) {
	s.target = next
	s.length = len(s.display)
	if len(next) > s.length {
		s.length = len(next)
	}
	s.frame = 0
	s.active = true
}

// render draws one frame: a character is revealed once the animation's
// progress passes its relative position in the longer of the two texts.
func (s *Scrambler) render() {
	length := s.length
	out := make([]rune, 0, len(s.target))
	complete := 0
	progress := float64(s.frame) / float64(s.frames)
	for i := 0; i < length; i++ {
		if progress > float64(i)/float64(length) {
			if i < len(s.target) {
				out = append(out, s.target[i])
			}
			complete++
		} else if i < len(s.target) {
			out = append(out, s.glyphs[s.rng.Intn(len(s.glyphs))])
		}
	}

	if complete < length {
		s.display = out
		s.frame++
		return
	}
	s.display = append([]rune(nil), s.target...)
	s.active = false
}
