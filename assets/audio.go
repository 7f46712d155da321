package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/dustdemons/assets/synth"
	"github.com/automoto/dustdemons/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader renders and caches the synthesized sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid a synthesis hitch on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}

	pcm := synth.Render(tone, l.context.SampleRate())
	if len(pcm) == 0 {
		return fmt.Errorf("empty tone for sound %d", id)
	}
	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player each time; PCM is cached for instant playback.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadMusic returns a looping player for the background drone.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	pcm := synth.Render(config.Sound.Music, l.context.SampleRate())
	if len(pcm) == 0 {
		return nil, fmt.Errorf("empty music tone")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}
