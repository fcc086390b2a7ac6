// Package audio plays the game's sound effects. Sounds are synthesized
// rather than loaded from files, and the player degrades to silence when no
// audio device is available.
package audio

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// Player turns simulation events into sounds. It is safe to call from the
// frame driver; playback never blocks the tick.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	ready  bool
	logger *log.Logger
	pitch  func() float64
}

// New creates a player. Call Init before events produce sound.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
		pitch:  scorePitch,
	}
}

// scorePitch returns a random pitch multiplier in (1, 2].
func scorePitch() float64 {
	return 2 - rand.Float64()
}

// Init opens the speaker. Failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "rate", p.cfg.SampleRate)
	return nil
}

// Enabled reports whether sounds are actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Handle plays the sound for every event in order.
func (p *Player) Handle(events []core.Event) {
	for _, e := range events {
		p.Play(e)
	}
}

// Play starts the sound for e. Unknown events are ignored.
func (p *Player) Play(e core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := p.sound(e)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.cfg.Volume))
	speaker.Unlock()
}

func (p *Player) sound(e core.Event) beep.Streamer {
	switch e {
	case core.EventBegin:
		return beginSound(p.rate)
	case core.EventScore:
		return scoreSound(p.rate, p.pitch())
	case core.EventOuch:
		return ouchSound(p.rate)
	default:
		return nil
	}
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}
