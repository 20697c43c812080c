// Package audio plays short synthesized effects for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/clony-bird/internal/core"
)

// SampleRate is the rate the speaker is opened with.
const SampleRate = beep.SampleRate(44100)

var _ core.SoundPlayer = (*Speaker)(nil)

// Speaker plays effects through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	closed bool
	volume float64
}

// NewSpeaker opens the audio device. The game runs fine without it, so
// callers usually fall back to core.Silent when this fails.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return &Speaker{volume: volume}, nil
}

// Play queues one effect per event that has a sound.
func (s *Speaker) Play(events []core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, e := range events {
		if st := Effect(e, SampleRate, s.volume); st != nil {
			speaker.Play(st)
		}
	}
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

type note struct {
	freq float64
	dur  time.Duration
}

// Effect returns the streamer for an event, or nil when the event is silent.
func Effect(e core.Event, sr beep.SampleRate, volume float64) beep.Streamer {
	var notes []note
	switch e {
	case core.EventFlap:
		notes = []note{{660, 40 * time.Millisecond}}
	case core.EventScore:
		notes = []note{{880, 50 * time.Millisecond}, {1320, 70 * time.Millisecond}}
	case core.EventLevelUp:
		notes = []note{
			{523.25, 80 * time.Millisecond},
			{659.25, 80 * time.Millisecond},
			{783.99, 80 * time.Millisecond},
			{1046.5, 160 * time.Millisecond},
		}
	case core.EventCrash:
		notes = []note{{196, 120 * time.Millisecond}, {110, 250 * time.Millisecond}}
	default:
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			// Frequency above Nyquist for this rate
			continue
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}
	if len(parts) == 0 {
		return nil
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume scales a streamer linearly; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
