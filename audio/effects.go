package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/brickbreaker/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	blipDuration    = 40 * time.Millisecond
	blipAttack      = 2 * time.Millisecond
	blipRelease     = 30 * time.Millisecond
	crackDuration   = 120 * time.Millisecond
	crackAttack     = 1 * time.Millisecond
	crackRelease    = 100 * time.Millisecond
	deathNote       = 180 * time.Millisecond
	clearNote       = 110 * time.Millisecond
	noteAttack      = 5 * time.Millisecond
	noteRelease     = 60 * time.Millisecond
	variantPitchMul = 1.12
)

// Variants is the number of pitched versions of each bounce sound
const Variants = 2

// waveforms maps each WaveType to a sampler over phase in [0, 1)
var waveforms = [...]func(phase float64, rng *rand.Rand) float64{
	WaveSine: func(p float64, _ *rand.Rand) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64, _ *rand.Rand) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64, _ *rand.Rand) float64 { return 2*p - 1 },
	WaveNoise: func(_ float64, rng *rand.Rand) float64 { return rng.Float64()*2 - 1 },
}

// tone is a fixed-length periodic waveform
type tone struct {
	sample    func(float64, *rand.Rand) float64
	step      float64 // phase advance per sample
	phase     float64
	remaining int
	rng       *rand.Rand
}

// NewOscillator returns a mono tone of freq Hz lasting duration, duplicated to both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		sample:    waveforms[wave],
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		rng:       rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), t.remaining)
	for i := range samples[:n] {
		v := t.sample(t.phase, t.rng)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.remaining -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// envelope scales a stream by a linear attack ramp and a linear release tail
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration; samples past duration are cut
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain at sample index i
func (e *envelope) gain(i int) float64 {
	g := 1.0
	if e.attack > 0 && i < e.attack {
		g = float64(i) / float64(e.attack)
	}
	if left := e.total - i; e.release > 0 && left < e.release {
		g = math.Min(g, float64(left)/float64(e.release))
	}
	return math.Max(g, 0)
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if room := e.total - e.pos; len(samples) > room {
		samples = samples[:room]
	}
	n, ok := e.streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to a silent effect
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSound builds the streamer for a sound; variant selects a pitch step
func CreateSound(sound core.SoundType, variant int, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	pitch := math.Pow(variantPitchMul, float64(variant%Variants))

	var s beep.Streamer
	switch sound {
	case core.SoundPaddleHit:
		s = blip(440*pitch, WaveSquare, rate)
	case core.SoundWallHit:
		s = blip(330*pitch, WaveSine, rate)
	case core.SoundBrickHit:
		s = blip(660*pitch, WaveSquare, rate)
	case core.SoundBrickBreak:
		s = beep.Mix(
			newVolume(blip(880*pitch, WaveSaw, rate), 0.6),
			newVolume(NewEnvelope(NewOscillator(0, crackDuration, WaveNoise, rate),
				crackDuration, crackAttack, crackRelease, rate), 0.4),
		)
	case core.SoundBallDeath:
		s = notes(rate, WaveSaw, deathNote, 392, 311, 196)
	case core.SoundLevelClear:
		s = notes(rate, WaveSine, clearNote, 523, 659, 784, 1047)
	default:
		return nil
	}

	vol := cfg.EffectVolumes[sound] * cfg.MasterVolume
	return newVolume(s, vol)
}

func blip(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, blipDuration, wave, rate)
	return NewEnvelope(osc, blipDuration, blipAttack, blipRelease, rate)
}

// notes plays a sequence of shaped tones
func notes(rate beep.SampleRate, wave WaveType, each time.Duration, freqs ...float64) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, each, wave, rate)
		seq = append(seq, NewEnvelope(osc, each, noteAttack, noteRelease, rate))
	}
	return beep.Seq(seq...)
}
