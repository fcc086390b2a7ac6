package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding from one frequency to another.
// Equal frequencies give a plain tone.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		var v float64
		switch s.wave {
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * s.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a linear attack and release to a stream of known length.
type fade struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewFade shapes s, which must last d, with a linear attack and release.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.pos < f.attack {
			g = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			g = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// withVolume scales s linearly; zero or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewFade(NewSweep(from, to, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// beginSound is a rising two note chime.
func beginSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(523.25, 523.25, 90*time.Millisecond, WaveSquare, rate),
		note(783.99, 783.99, 140*time.Millisecond, WaveSquare, rate),
	)
}

// scoreSound is a short blip; pitch multiplies its base frequency.
func scoreSound(rate beep.SampleRate, pitch float64) beep.Streamer {
	base := 660 * pitch
	return note(base, base*1.5, 80*time.Millisecond, WaveSine, rate)
}

// ouchSound is a falling buzz.
func ouchSound(rate beep.SampleRate) beep.Streamer {
	return note(320, 70, 260*time.Millisecond, WaveSaw, rate)
}
