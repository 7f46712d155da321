package systems

import (
	"sync"

	"github.com/automoto/dustdemons/assets"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects up front so the first hit
// doesn't stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio processes pending SFX and the music fade
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		audioData.Context = globalAudioContext
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts the looping drone unless it is already playing
func PlayMusic(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		return
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic()
	if err != nil {
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed.
// Context stays nil until UpdateAudio has run once.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
