package components

import (
	"image/color"

	"github.com/automoto/dustdemons/timers"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active screen shake (singleton)
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData is the full-screen white flash after a hit (singleton).
// Active is cleared by a juice timer.
type FlashData struct {
	Active bool
	Alpha  float64 // peak opacity, fades out until Timer is due
	Timer  *timers.Handle
}

var Flash = donburi.NewComponentType[FlashData]()

// GlitchData tints and tears the screen after a vortex or boss hit (singleton)
type GlitchData struct {
	Active bool
	Timer  *timers.Handle
}

var Glitch = donburi.NewComponentType[GlitchData]()

// ParticleData is one spark of a kill burst
type ParticleData struct {
	OriginX, OriginY float64
	DX, DY           float64 // offset at the end of the burst
	Tween            *gween.Tween
	Progress         float64
	Color            color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// FloatingTextData is a rising popup such as "HIT!" or "COMBO X3!".
// The entity is removed by a juice timer.
type FloatingTextData struct {
	Text    string
	X, Y    float64
	Color   color.RGBA
	Tween   *gween.Tween // rise
	Rise    float64
	Pop     *gween.Tween // scale
	Scale   float64
	Elapsed float64 // seconds
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

// LootData is a coin flying from a kill to the score counter
type LootData struct {
	FromX, FromY float64
	ToX, ToY     float64
	Tween        *gween.Tween
	Progress     float64
}

var Loot = donburi.NewComponentType[LootData]()
