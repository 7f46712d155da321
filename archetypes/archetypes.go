package archetypes

import (
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Mission = newArchetype(
		components.Mission,
	)
	Ship = newArchetype(
		tags.Ship,
		components.Ship,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.EnemySprite,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
	Loot = newArchetype(
		tags.Loot,
		components.Loot,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
