// Package audio plays short tones for world events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bounce/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player reacts to world events.
type Player interface {
	Play(events []core.Event)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play([]core.Event) {}

// Close does nothing.
func (Nop) Close() {}

// Tone describes the sound for one event kind.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// ToneFor returns the tone played for an event kind. Kinds without a
// sound report false.
func ToneFor(kind core.EventKind) (Tone, bool) {
	switch kind {
	case core.EventBrickHit:
		return Tone{Freq: 660, Duration: 40 * time.Millisecond, Volume: 0.5}, true
	case core.EventBrickDestroyed:
		return Tone{Freq: 990, Duration: 90 * time.Millisecond, Volume: 0.6}, true
	case core.EventBrickBounce:
		return Tone{Freq: 330, Duration: 30 * time.Millisecond, Volume: 0.4}, true
	case core.EventPaddleBounce:
		return Tone{Freq: 440, Duration: 35 * time.Millisecond, Volume: 0.4}, true
	case core.EventSpawn:
		return Tone{Freq: 520, Duration: 20 * time.Millisecond, Volume: 0.25}, true
	}
	return Tone{}, false
}

// Streamer builds a finite sine streamer for the tone.
func (t Tone) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, err
	}
	return volume(beep.Take(sr.N(t.Duration), sine), t.Volume), nil
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Beeper mixes event tones into the speaker.
type Beeper struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	sr     beep.SampleRate
	logger *log.Logger
	// live is set once the mixer is attached to the speaker.
	live bool
}

// NewBeeper initializes the speaker. On failure it returns a Nop player
// and the error.
func NewBeeper(logger *log.Logger) (Player, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "err", err)
		return Nop{}, err
	}
	b := newBeeper(sampleRate, logger)
	speaker.Play(b.mixer)
	b.live = true
	logger.Debug("audio initialized", "sample_rate", int(sampleRate))
	return b, nil
}

func newBeeper(sr beep.SampleRate, logger *log.Logger) *Beeper {
	return &Beeper{mixer: &beep.Mixer{}, sr: sr, logger: logger}
}

// Play queues one tone per distinct event kind.
func (b *Beeper) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}
	started := make(map[core.EventKind]bool, len(events))
	b.lock()
	defer b.unlock()
	for _, e := range events {
		if started[e.Kind] {
			continue
		}
		tone, ok := ToneFor(e.Kind)
		if !ok {
			continue
		}
		s, err := tone.Streamer(b.sr)
		if err != nil {
			b.logger.Debug("tone skipped", "kind", e.Kind, "err", err)
			continue
		}
		b.mixer.Add(s)
		started[e.Kind] = true
	}
}

// Pending returns the number of tones still playing.
func (b *Beeper) Pending() int {
	b.lock()
	defer b.unlock()
	return b.mixer.Len()
}

// Close stops all tones.
func (b *Beeper) Close() {
	b.lock()
	defer b.unlock()
	b.mixer.Clear()
}

// The speaker goroutine reads the mixer under the speaker lock.
func (b *Beeper) lock() {
	b.mu.Lock()
	if b.live {
		speaker.Lock()
	}
}

func (b *Beeper) unlock() {
	if b.live {
		speaker.Unlock()
	}
	b.mu.Unlock()
}
