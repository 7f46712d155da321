package config

import "github.com/automoto/dustdemons/assets/synth"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundHit
	SoundKill
	SoundBossKill
	SoundVortex
	SoundBurn
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	// Music fade out duration in frames
	MusicFadeDuration int
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Music             synth.Tone
	Tones             map[SoundID]synth.Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,

		MusicFadeDuration: 30,
	}

	Sound = SoundConfig{
		Music: synth.Tone{StartHz: 55, EndHz: 55, Seconds: 4, Square: 0.15, Noise: 0.05, Volume: 0.12, Sustain: true},
		Tones: map[SoundID]synth.Tone{
			SoundHit:          {StartHz: 880, EndHz: 440, Seconds: 0.08, Square: 1, Volume: 0.35},
			SoundKill:         {StartHz: 660, EndHz: 110, Seconds: 0.25, Square: 0.6, Noise: 0.3, Volume: 0.45},
			SoundBossKill:     {StartHz: 220, EndHz: 40, Seconds: 0.6, Square: 0.8, Noise: 0.5, Volume: 0.6},
			SoundVortex:       {StartHz: 60, EndHz: 1200, Seconds: 0.9, Square: 0.3, Noise: 0.2, Volume: 0.5},
			SoundBurn:         {StartHz: 300, EndHz: 30, Seconds: 1.2, Noise: 0.8, Volume: 0.5},
			SoundMenuNavigate: {StartHz: 520, EndHz: 520, Seconds: 0.04, Square: 1, Volume: 0.25},
			SoundMenuSelect:   {StartHz: 520, EndHz: 1040, Seconds: 0.12, Square: 1, Volume: 0.3},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.5,
		},
	}
}
