package ui

import (
	"time"

	"snake3d/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Sounds plays short tones for game events. Without an audio device it
// stays silent.
type Sounds struct {
	sampleRate beep.SampleRate
	ready      bool
	logger     *zap.SugaredLogger
}

func NewSounds(enabled bool, logger *zap.SugaredLogger) *Sounds {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Sounds{sampleRate: beep.SampleRate(44100), logger: logger}
	if !enabled {
		return s
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		s.logger.Warnf("Audio initialization failed: %v", err)
		return s
	}
	s.ready = true
	return s
}

func (s *Sounds) Play(res game.TickResult) {
	switch {
	case res.Won:
		s.tone(990, 500*time.Millisecond)
	case res.Died:
		s.tone(196, 400*time.Millisecond)
	case res.Ate:
		s.tone(880, 60*time.Millisecond)
	}
}

func (s *Sounds) tone(freq float64, d time.Duration) {
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(s.sampleRate, freq)
	if err != nil {
		s.logger.Warnf("Tone %.0fHz: %v", freq, err)
		return
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	speaker.Play(beep.Take(s.sampleRate.N(d), quiet))
}

func (s *Sounds) Close() {
	if s.ready {
		speaker.Close()
	}
}
