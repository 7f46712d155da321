package factory

import (
	"github.com/automoto/dustdemons/arcade"
	"github.com/automoto/dustdemons/archetypes"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemySize returns the on-screen edge length of an enemy sprite.
func EnemySize(boss bool) float64 {
	if boss {
		return cfg.EnemySprite.BossSize
	}
	return cfg.EnemySprite.NormalSize
}

// CreateEnemySprite mirrors a live arcade enemy and registers its hit box.
func CreateEnemySprite(e *ecs.ECS, space *resolv.Space, view arcade.EnemyView) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(e)

	size := EnemySize(view.Boss)
	obj := resolv.NewObject(view.X, view.Y, size, size, tags.ResolvEnemy)
	obj.Data = enemy
	space.Add(obj)

	components.EnemySprite.SetValue(enemy, components.EnemySpriteData{
		ID:     view.ID,
		Object: obj,
		Boss:   view.Boss,
		Label:  view.Asset.Name,
	})
	return enemy
}
