// Package chime plays a short two-note tone whenever the curves restart.
package chime

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 80 * time.Millisecond
	baseFreq   = 440.0
)

// Chime plays restart tones on the default audio device.
// The zero value is silent until Init succeeds.
type Chime struct {
	mu    sync.Mutex
	ready bool
}

// Init opens the audio device. A failure leaves the chime silent.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("chime: init speaker: %w", err)
	}
	c.ready = true
	return nil
}

// Play queues the tone for the given restart cycle. It never blocks on
// playback and does nothing if the device is not open.
func (c *Chime) Play(cycle int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return nil
	}
	s, err := Melody(sampleRate, cycle)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Close releases the audio device.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

// Melody returns a root note and its fifth, each noteLength long. The root
// climbs a semitone per cycle and wraps after an octave.
func Melody(rate beep.SampleRate, cycle int) (beep.Streamer, error) {
	root := baseFreq * math.Pow(2, float64(cycle%12)/12)
	n := rate.N(noteLength)

	first, err := generators.SineTone(rate, root)
	if err != nil {
		return nil, fmt.Errorf("chime: root tone: %w", err)
	}
	second, err := generators.SineTone(rate, root*1.5)
	if err != nil {
		return nil, fmt.Errorf("chime: fifth tone: %w", err)
	}

	seq := beep.Seq(beep.Take(n, first), beep.Take(n, second))
	return &effects.Volume{Streamer: seq, Base: 2, Volume: -2, Silent: false}, nil
}
