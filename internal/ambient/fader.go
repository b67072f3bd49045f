package ambient

import (
	"time"

	"github.com/faiface/beep"
)

const fadeDuration = 400 * time.Millisecond

// Fader ramps its source linearly from silence to full volume over its first
// length samples. Restart begins a new ramp, so resumed playback does not
// start at full volume.
type Fader struct {
	Streamer beep.Streamer
	length   int
	pos      int
}

func NewFader(s beep.Streamer, length int) *Fader {
	return &Fader{Streamer: s, length: length}
}

func (f *Fader) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.Streamer.Stream(samples)
	for i := 0; i < n && f.pos < f.length; i++ {
		gain := float64(f.pos) / float64(f.length)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *Fader) Err() error { return f.Streamer.Err() }

func (f *Fader) Restart() {
	f.pos = 0
}
