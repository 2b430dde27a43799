package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	grabToneHz       = 1320.0
	dropToneHz       = 660.0
	toneDurationMs   = 45
	toneAmplitude    = 0.2
	toneDecayPerSec  = 60.0
	flipDurationMs   = 120
	flipLowHz        = 330.0
	flipHighHz       = 990.0
	flipAmplitude    = 0.15
	flipAttackFactor = 0.02
)

// SoundManager plays short cues for editor interactions
// Every method is a no-op until Initialize succeeds, so callers need no
// audio checks of their own.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues will be audible
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and releases the audio device
// The speaker cannot be initialized again afterwards.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Close takes the speaker lock itself
	speaker.Close()
	sm.initialized = false
}

// PlayGrab plays a short high tick when a marker is picked up
func (sm *SoundManager) PlayGrab() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*toneDurationMs), NewToneGenerator(sampleRate, grabToneHz)))
}

// PlayDrop plays a lower tick when a marker is released
func (sm *SoundManager) PlayDrop() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*toneDurationMs), NewToneGenerator(sampleRate, dropToneHz)))
}

// PlayFlip plays a sweep on reverse toggle, rising when reverse turns on
func (sm *SoundManager) PlayFlip(reverse bool) {
	from, to := flipHighHz, flipLowHz
	if reverse {
		from, to = flipLowHz, flipHighHz
	}
	n := sampleRate.N(time.Millisecond * flipDurationMs)
	sm.play(beep.Take(n, NewSweepGenerator(sampleRate, from, to, n)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToneGenerator generates a decaying sine tick
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, exponential decay
		envelope := math.Exp(-t * toneDecayPerSec)
		sample := toneAmplitude * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another over a fixed length
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting length samples; it holds the
// final frequency afterwards
func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int) *SweepGenerator {
	if length < 1 {
		length = 1
	}
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: length,
	}
}

// FrequencyAt returns the instantaneous frequency at sample pos
func (g *SweepGenerator) FrequencyAt(pos int) float64 {
	progress := math.Min(float64(pos)/float64(g.length), 1)
	return g.from + (g.to-g.from)*progress
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)

		// Phase accumulates so the glide has no discontinuities
		g.phase += g.FrequencyAt(g.pos) / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Short fade-in, linear fade-out
		envelope := math.Min(progress/flipAttackFactor, 1) * (1 - progress)
		sample := flipAmplitude * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
