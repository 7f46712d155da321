package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/dustdemons/archetypes"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/shared/gamemath"
	"github.com/automoto/dustdemons/timers"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticleBurst scatters a ring of sparks from (x, y). Each spark flies a
// random fraction of the configured spread.
func SpawnParticleBurst(e *ecs.ECS, x, y float64, clr color.RGBA) {
	n := cfg.Effects.ParticleCount
	seconds := float32(cfg.Effects.ParticleDuration.Seconds())

	for i := 0; i < n; i++ {
		radius := cfg.Effects.ParticleSpread / 2 * (0.3 + 0.7*rand.Float64())
		dx, dy := gamemath.BurstOffset(i, n, radius)

		p := archetypes.Particle.Spawn(e)
		components.Particle.SetValue(p, components.ParticleData{
			OriginX: x,
			OriginY: y,
			DX:      dx,
			DY:      dy,
			Tween:   gween.New(0, 1, seconds, ease.OutQuad),
			Color:   clr,
		})
	}
}

// SpawnFloatingText shows a rising popup that the juice scheduler removes
// after the configured lifetime.
func SpawnFloatingText(e *ecs.ECS, juice *timers.Scheduler, x, y float64, text string, clr color.RGBA) {
	ft := archetypes.FloatingText.Spawn(e)
	components.FloatingText.SetValue(ft, components.FloatingTextData{
		Text:  text,
		X:     x,
		Y:     y,
		Color: clr,
		Tween: gween.New(0, float32(cfg.Effects.FloatingTextRise), float32(cfg.Effects.FloatingTextDuration.Seconds()), ease.Linear),
		Pop:   gween.New(0, float32(cfg.Effects.FloatingTextScale), float32(cfg.Effects.FloatingTextPop.Seconds()), ease.OutBack),
	})

	entity := ft.Entity()
	juice.After(cfg.Effects.FloatingTextDuration, func() {
		if e.World.Valid(entity) {
			e.World.Remove(entity)
		}
	})
}

// SpawnLoot sends a coin from a kill to the score counter.
func SpawnLoot(e *ecs.ECS, x, y float64) {
	loot := archetypes.Loot.Spawn(e)
	components.Loot.SetValue(loot, components.LootData{
		FromX: x,
		FromY: y,
		ToX:   cfg.Effects.LootTargetX,
		ToY:   cfg.Effects.LootTargetY,
		Tween: gween.New(0, 1, float32(cfg.Effects.LootDuration.Seconds()), ease.InOutQuad),
	})
}
