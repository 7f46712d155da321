package arcade

import (
	"time"

	"github.com/automoto/dustdemons/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spawn creates one enemy bound to a random asset and returns its id.
// It does nothing when there are no assets or the loop is closed.
func (l *Loop) Spawn() (uint64, bool) {
	if l.closed || len(l.assets) == 0 {
		return 0, false
	}

	span := l.width - l.cfg.EnemyWidth
	if span < 0 {
		span = 0
	}
	x := l.rng.Float64() * span
	fall := l.cfg.FallMin + time.Duration(l.rng.Float64()*float64(l.cfg.FallMax-l.cfg.FallMin))
	asset := l.assets[l.rng.IntN(len(l.assets))]
	boss := l.isBoss(asset)

	health := l.cfg.NormalHealth
	if boss {
		health = l.cfg.BossHealth
	}

	l.nextID++
	id := l.nextID

	entity := l.world.Create(tags.Enemy, Enemy, Health, Fall)
	e := l.world.Entry(entity)
	Enemy.SetValue(e, EnemyData{
		ID:           id,
		X:            x,
		FallDuration: fall,
		Asset:        asset,
		Boss:         boss,
	})
	Health.SetValue(e, HealthData{Current: health, Max: health})
	Fall.SetValue(e, FallData{
		Tween: gween.New(0, 1, float32(fall.Seconds()), ease.Linear),
	})
	l.index.Put(id, entity)

	return id, true
}

// isBoss keeps both rules: large holdings are always bosses, anything else
// becomes one on a lucky roll.
func (l *Loop) isBoss(asset Asset) bool {
	return asset.Quantity > l.cfg.BossQuantityThreshold || l.rng.Float64() > l.cfg.BossRoll
}
