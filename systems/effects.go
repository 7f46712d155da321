package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/dustdemons/arcade"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/fonts"
	"github.com/automoto/dustdemons/shared/gamemath"
	"github.com/automoto/dustdemons/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var floatingTextOp = &ebiten.DrawImageOptions{}

// UpdateEffects advances juice timers and every particle, popup, coin and
// shake. It keeps running while the exorcism modal is open.
func UpdateEffects(e *ecs.ECS) {
	if m, ok := GetMission(e); ok {
		m.Juice.Advance(tickStep(m.JuiceTicks))
		m.JuiceTicks++
	}
	dt := 1 / float32(cfg.C.TPS)

	updateParticles(e, dt)
	updateFloatingTexts(e, dt)
	updateLoot(e, dt)
	updateScreenShake(e)
}

func updateParticles(e *ecs.ECS, dt float32) {
	var done []*donburi.Entry
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		v, finished := p.Tween.Update(dt)
		p.Progress = float64(v)
		if finished {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		entry.Remove()
	}
}

// updateFloatingTexts animates popups; a juice timer removes them
func updateFloatingTexts(e *ecs.ECS, dt float32) {
	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		rise, _ := ft.Tween.Update(dt)
		ft.Rise = float64(rise)
		if ft.Pop != nil {
			scale, _ := ft.Pop.Update(dt)
			ft.Scale = float64(scale)
		}
		ft.Elapsed += float64(dt)
	})
}

func updateLoot(e *ecs.ECS, dt float32) {
	var done []*donburi.Entry
	components.Loot.Each(e.World, func(entry *donburi.Entry) {
		l := components.Loot.Get(entry)
		v, finished := l.Tween.Update(dt)
		l.Progress = float64(v)
		if finished {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		entry.Remove()
	}
}

// updateScreenShake decays the active shake
func updateScreenShake(e *ecs.ECS) {
	shake := getOrCreateScreenShake(e)
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// ShakeOffset returns the current screen shake offset in pixels
func ShakeOffset(e *ecs.ECS) (float64, float64) {
	shake := getOrCreateScreenShake(e)
	if shake.Duration <= 0 {
		return 0, 0
	}

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	shake := getOrCreateScreenShake(e)
	// Only override if new shake is stronger
	if shake.Duration > 0 && intensity <= shake.Intensity {
		return
	}
	*shake = components.ScreenShakeData{Intensity: intensity, Duration: duration}
}

// TriggerFlash flashes the screen white; a new flash restarts the fade
func TriggerFlash(e *ecs.ECS, m *components.MissionData) {
	flash := getOrCreateFlash(e)
	flash.Timer.Cancel()
	flash.Active = true
	flash.Alpha = cfg.Effects.FlashAlpha
	flash.Timer = m.Juice.After(cfg.Effects.FlashDuration, func() {
		getOrCreateFlash(e).Active = false
	})
}

// TriggerGlitch tints and tears the screen for a moment
func TriggerGlitch(e *ecs.ECS, m *components.MissionData) {
	glitch := getOrCreateGlitch(e)
	glitch.Timer.Cancel()
	glitch.Active = true
	glitch.Timer = m.Juice.After(cfg.Effects.GlitchDuration, func() {
		getOrCreateGlitch(e).Active = false
	})
}

func onHitJuice(e *ecs.ECS, m *components.MissionData, x, y float64) {
	TriggerFlash(e, m)
	factory.SpawnParticleBurst(e, x, y, cfg.Red)
	factory.SpawnFloatingText(e, m.Juice, x, y, "HIT!", cfg.Yellow)
	PlaySFX(e, cfg.SoundHit)
}

func onKillJuice(e *ecs.ECS, m *components.MissionData, k arcade.KillEvent, x, y float64) {
	if k.Combo >= cfg.Effects.ComboAnnounceAt {
		w, h := float64(cfg.C.Width), float64(cfg.C.Height)
		factory.SpawnFloatingText(e, m.Juice, w/2, h/2, fmt.Sprintf("COMBO X%d!", k.Combo), cfg.Magenta)
	}

	burst := cfg.Violet
	if k.Boss {
		burst = cfg.Red
		factory.SpawnFloatingText(e, m.Juice, x, y, "BOSS DEFEATED!", cfg.Red)
		TriggerScreenShake(e, cfg.Effects.ShakeIntensity, cfg.Effects.ShakeFrames)
		PlaySFX(e, cfg.SoundBossKill)
	} else {
		PlaySFX(e, cfg.SoundKill)
	}

	TriggerFlash(e, m)
	factory.SpawnParticleBurst(e, x, y, burst)
	factory.SpawnLoot(e, x, y)
}

func onVortexJuice(e *ecs.ECS, m *components.MissionData, v arcade.VortexEvent) {
	TriggerGlitch(e, m)
	if v.Cleared > 0 {
		TriggerScreenShake(e, cfg.Effects.ShakeIntensity/2, cfg.Effects.ShakeFrames)
	}
	PlaySFX(e, cfg.SoundVortex)
}

// DrawEffects renders particles, loot and popups
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	size := cfg.Effects.ParticleSize
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		x := p.OriginX + p.DX*p.Progress
		y := p.OriginY + p.DY*p.Progress
		fillRect(screen, rect{X: x - size/2, Y: y - size/2, W: size, H: size}, withAlpha(p.Color, 1-p.Progress))
	})

	components.Loot.Each(e.World, func(entry *donburi.Entry) {
		l := components.Loot.Get(entry)
		x := gamemath.Lerp(l.FromX, l.ToX, l.Progress)
		y := gamemath.Lerp(l.FromY, l.ToY, l.Progress)
		fillCircle(screen, x, y, 5, cfg.Yellow)
		strokeCircle(screen, x, y, 5, 1, color.RGBA{R: 180, G: 140, A: 255})
	})

	face := fonts.MonoBold.Get()
	lifetime := cfg.Effects.FloatingTextDuration.Seconds()
	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		alpha := gamemath.FadeOut(ft.Elapsed/lifetime, cfg.Effects.FloatingTextFadeAt)
		drawImpactText(screen, ft.Text, face, ft.X, ft.Y-ft.Rise, ft.Scale, ft.Color, alpha)
	})
}

// drawImpactText draws scaled text centered on (cx, baseline) with a hard
// drop shadow
func drawImpactText(screen *ebiten.Image, s string, face font.Face, cx, baseline, scale float64, clr color.RGBA, alpha float64) {
	if scale <= 0 || alpha <= 0 {
		return
	}
	half := float64(fonts.Width(face, s)) / 2

	for _, layer := range []struct {
		offset float64
		clr    color.Color
	}{
		{offset: 3, clr: color.RGBA{A: 178}},
		{offset: 0, clr: clr},
	} {
		floatingTextOp.GeoM.Reset()
		floatingTextOp.ColorScale.Reset()
		floatingTextOp.GeoM.Translate(-half, 0)
		floatingTextOp.GeoM.Scale(scale, scale)
		floatingTextOp.GeoM.Translate(cx+layer.offset, baseline+layer.offset)
		floatingTextOp.ColorScale.ScaleWithColor(layer.clr)
		floatingTextOp.ColorScale.ScaleAlpha(float32(alpha))
		text.DrawWithOptions(screen, s, face, floatingTextOp)
	}
}

// DrawFlash renders the fading white flash
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	flash := getOrCreateFlash(e)
	m, ok := GetMission(e)
	if !flash.Active || !ok {
		return
	}
	left := float64(flash.Timer.Due()-m.Juice.Now()) / float64(cfg.Effects.FlashDuration)
	bounds := screen.Bounds()
	fillRect(screen, rect{W: float64(bounds.Dx()), H: float64(bounds.Dy())}, withAlpha(cfg.White, flash.Alpha*gamemath.Clamp(left, 0, 1)))
}

// DrawGlitch renders the magenta tint and a few torn bands
func DrawGlitch(e *ecs.ECS, screen *ebiten.Image) {
	glitch := getOrCreateGlitch(e)
	if !glitch.Active {
		return
	}
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	fillRect(screen, rect{W: w, H: h}, nrgba(cfg.GlitchTint))

	frame := 0
	if crt, ok := components.CRT.First(e.World); ok {
		frame = components.CRT.Get(crt).Frame
	}
	for i := 0; i < 4; i++ {
		y := math.Mod(float64(frame*37+i*151), h)
		band := color.NRGBA{G: 255, B: 255, A: 60}
		if i%2 == 1 {
			band = color.NRGBA{R: 255, B: 255, A: 60}
		}
		fillRect(screen, rect{X: float64((i%3)-1) * 6, Y: y, W: w, H: 3 + float64(i)}, band)
	}
}

func getOrCreateScreenShake(e *ecs.ECS) *components.ScreenShakeData {
	if _, ok := components.ScreenShake.First(e.World); !ok {
		e.World.Create(components.ScreenShake)
	}
	ent, _ := components.ScreenShake.First(e.World)
	return components.ScreenShake.Get(ent)
}

func getOrCreateFlash(e *ecs.ECS) *components.FlashData {
	if _, ok := components.Flash.First(e.World); !ok {
		e.World.Create(components.Flash)
	}
	ent, _ := components.Flash.First(e.World)
	return components.Flash.Get(ent)
}

func getOrCreateGlitch(e *ecs.ECS) *components.GlitchData {
	if _, ok := components.Glitch.First(e.World); !ok {
		e.World.Create(components.Glitch)
	}
	ent, _ := components.Glitch.First(e.World)
	return components.Glitch.Get(ent)
}
