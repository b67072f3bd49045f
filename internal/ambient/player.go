// Package ambient plays an optional looping background track that follows
// the backdrop's visibility: it is silent whenever the animation is.
package ambient

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupported = errors.New("unsupported audio format")

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a decoder by file extension.
func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(r) }, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".flac":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(r) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Player loops one track through the speaker.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *Fader
}

// Open decodes path and starts playing it in a loop, paused if paused is set.
func Open(path string, paused bool) (*Player, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	fader := NewFader(beep.Loop(-1, streamer), format.SampleRate.N(fadeDuration))
	p := &Player{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: fader, Paused: paused},
		volume:   fader,
	}
	speaker.Play(p.ctrl)

	log.Printf("[INFO] ambient: playing %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return p, nil
}

// SetPaused pauses or resumes playback.
func (p *Player) SetPaused(paused bool) {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	if !paused {
		p.volume.Restart()
	}
	speaker.Unlock()
}

func (p *Player) Paused() bool {
	if p == nil {
		return true
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Close stops playback and releases the file.
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	speaker.Clear()
	err := p.streamer.Close()
	// decoders may already have closed the file
	_ = p.file.Close()
	return err
}
