package systems

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/dustdemons/arcade"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/shared/dimension"
	"github.com/automoto/dustdemons/systems/factory"
	"github.com/automoto/dustdemons/wallet"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MissionSetup is everything a mission needs from character select
type MissionSetup struct {
	Session   wallet.Session
	Assets    []wallet.Asset
	Hunter    cfg.HunterConfig
	Dimension *dimension.Dimension
	Rand      arcade.Rand // nil seeds a fresh generator
}

// StartMission creates the mission singleton, the ship and the arcade loop
// whose events drive sprites and juice.
func StartMission(e *ecs.ECS, setup MissionSetup) *components.MissionData {
	opts := []arcade.Option{arcade.WithEvents(missionEvents(e))}
	if setup.Rand != nil {
		opts = append(opts, arcade.WithRand(setup.Rand))
	}

	entry := factory.CreateMission(e, components.MissionData{
		Session:   setup.Session,
		Assets:    setup.Assets,
		Hunter:    setup.Hunter,
		Dimension: setup.Dimension,
		Best:      Profile().BestScore,
	}, opts...)
	factory.CreateShip(e, setup.Hunter)

	log.Printf("[mission] %s deployed with %d assets", setup.Hunter.Name, len(setup.Assets))
	return components.Mission.Get(entry)
}

// GetMission returns the mission singleton if one is running in this world
func GetMission(e *ecs.ECS) (*components.MissionData, bool) {
	entry, ok := components.Mission.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Mission.Get(entry), true
}

func missionEvents(e *ecs.ECS) arcade.Events {
	return arcade.Events{
		OnScore: func(score int) {
			if m, ok := GetMission(e); ok {
				m.Score = score
			}
		},
		OnHit: func(res arcade.ShotResult) {
			m, ok := GetMission(e)
			if !ok {
				return
			}
			if x, y, ok := spriteCenter(e, m, res.EnemyID); ok {
				onHitJuice(e, m, x, y)
			}
			if entry, ok := spriteEntry(e, m, res.EnemyID); ok {
				components.EnemySprite.Get(entry).HitTimer = cfg.Effects.HealthBarFrames
			}
		},
		OnKill: func(k arcade.KillEvent) {
			m, ok := GetMission(e)
			if !ok {
				return
			}
			if x, y, ok := spriteCenter(e, m, k.EnemyID); ok {
				onKillJuice(e, m, k, x, y)
			}
			removeEnemySprite(e, m, k.EnemyID)
			m.Kills = append(m.Kills, k)
		},
		OnVortex: func(v arcade.VortexEvent) {
			m, ok := GetMission(e)
			if !ok {
				return
			}
			onVortexJuice(e, m, v)
		},
		OnDespawn: func(id uint64) {
			if m, ok := GetMission(e); ok {
				removeEnemySprite(e, m, id)
			}
		},
	}
}

// UpdateMission advances the arcade loop by one tick and mirrors its enemies
func UpdateMission(e *ecs.ECS) {
	m, ok := GetMission(e)
	if !ok || m.Outcome != components.MissionRunning {
		return
	}

	m.Loop.Advance(tickStep(m.LoopTicks))
	m.LoopTicks++
	syncEnemySprites(e, m)
}

// tickStep returns the loop time covered by tick n. Steps carry the division
// remainder so that TPS ticks add up to exactly one second.
func tickStep(n int64) time.Duration {
	tps := int64(cfg.C.TPS)
	sec := int64(time.Second)
	return time.Duration((n+1)*sec/tps - n*sec/tps)
}

// syncEnemySprites creates sprites for new enemies, moves live ones and
// drops any sprite whose enemy is gone (a vortex clears without events).
func syncEnemySprites(e *ecs.ECS, m *components.MissionData) {
	views := m.Loop.Enemies()
	live := intmap.New[uint64, struct{}](len(views))

	for _, v := range views {
		live.Put(v.ID, struct{}{})

		entry, ok := spriteEntry(e, m, v.ID)
		if !ok {
			entry = factory.CreateEnemySprite(e, m.Space, v)
			m.Sprites.Put(v.ID, entry.Entity())
		}

		sprite := components.EnemySprite.Get(entry)
		sprite.Object.X = v.X
		sprite.Object.Y = v.Y
		sprite.Object.Update()
		if sprite.HitTimer > 0 {
			sprite.HitTimer--
		}
	}

	var stale []uint64
	m.Sprites.ForEach(func(id uint64, _ donburi.Entity) bool {
		if !live.Has(id) {
			stale = append(stale, id)
		}
		return true
	})
	for _, id := range stale {
		removeEnemySprite(e, m, id)
	}
}

func spriteEntry(e *ecs.ECS, m *components.MissionData, id uint64) (*donburi.Entry, bool) {
	entity, ok := m.Sprites.Get(id)
	if !ok || !e.World.Valid(entity) {
		return nil, false
	}
	return e.World.Entry(entity), true
}

// spriteCenter returns the on-screen center of an enemy's sprite
func spriteCenter(e *ecs.ECS, m *components.MissionData, id uint64) (float64, float64, bool) {
	entry, ok := spriteEntry(e, m, id)
	if !ok {
		return 0, 0, false
	}
	obj := components.EnemySprite.Get(entry).Object
	return obj.X + obj.W/2, obj.Y + obj.H/2, true
}

func removeEnemySprite(e *ecs.ECS, m *components.MissionData, id uint64) {
	entry, ok := spriteEntry(e, m, id)
	m.Sprites.Del(id)
	if !ok {
		return
	}
	m.Space.Remove(components.EnemySprite.Get(entry).Object)
	entry.Remove()
}

// AbortMission ends the run without a burn. The best score still counts.
func AbortMission(e *ecs.ECS, m *components.MissionData) {
	if m.Outcome != components.MissionRunning {
		return
	}
	ObserveScore(m.Loop.Run().Score)
	m.Loop.Close()
	stopJuice(e, m)
	m.Outcome = components.MissionAborted
	log.Printf("[mission] aborted at %d points", m.Score)
	PlaySFX(e, cfg.SoundMenuSelect)
}

// finishMission closes the loop after a confirmed burn and fills in the
// certificate shown by the result scene.
func finishMission(e *ecs.ECS, m *components.MissionData, asset wallet.Asset, receipt wallet.Receipt) {
	run := m.Loop.Run()
	newBest := RecordBurn(burnRecord(m, asset, receipt, run.Score))
	m.Loop.Close()
	stopJuice(e, m)

	best := Profile().BestScore
	m.Best = best
	m.Outcome = components.MissionBurned
	m.Result = &components.ResultData{
		Asset:     asset,
		Receipt:   receipt,
		Score:     run.Score,
		Best:      best,
		NewBest:   newBest,
		Hunter:    m.Hunter.Name,
		Dimension: dimensionName(m.Dimension),
		ShareText: shareText(asset, run.Score),
		Selected:  components.ResultShare,
		Time:      time.Now(),
	}
	log.Printf("[mission] %s burned, signature %s", asset.Name, receipt.Signature)
}

// stopJuice cancels every pending juice timer and clears the overlays those
// timers would have switched off.
func stopJuice(e *ecs.ECS, m *components.MissionData) {
	m.Juice.Stop()
	getOrCreateFlash(e).Active = false
	getOrCreateGlitch(e).Active = false
}

func dimensionName(d *dimension.Dimension) string {
	if d == nil {
		return ""
	}
	return d.Name
}

// scoreLabel formats a score the way the HUD and result card show it
func scoreLabel(score int) string {
	return fmt.Sprintf("%0*d", cfg.HUD.ScoreDigits, score)
}
