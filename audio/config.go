package audio

import "github.com/lixenwraith/brickbreaker/core"

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int

	// Per-effect volume multipliers, 0.0-1.0
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [core.SoundTypeCount]float64{
			core.SoundPaddleHit:  0.6,
			core.SoundWallHit:    0.4,
			core.SoundBrickHit:   0.5,
			core.SoundBrickBreak: 0.6,
			core.SoundBallDeath:  0.7,
			core.SoundLevelClear: 0.6,
		},
	}
}

// clamp01 bounds a volume to [0, 1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
