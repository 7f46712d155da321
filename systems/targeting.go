package systems

import (
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/shared/gamemath"
	"github.com/automoto/dustdemons/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargeting turns taps and fire/vortex/abort actions into loop calls.
// It must run before UpdateExorcism so the frame that closes the modal does
// not also reach gameplay.
func UpdateTargeting(e *ecs.ECS) {
	m, ok := GetMission(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	if x, y, ok := ConsumeTap(input); ok {
		handleTap(e, m, x, y)
	}
	if m.Outcome != components.MissionRunning {
		return
	}
	if GetAction(input, cfg.ActionFire).JustPressed {
		FireBeam(e, m)
	}
	if GetAction(input, cfg.ActionVortex).JustPressed {
		TriggerVortex(e, m)
	}
	if GetAction(input, cfg.ActionAbort).JustPressed {
		AbortMission(e, m)
	}
}

// handleTap resolves a tap: HUD buttons first, then the topmost enemy under
// the finger, otherwise the ship flies there.
func handleTap(e *ecs.ECS, m *components.MissionData, x, y float64) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	if abortButton(width, height).contains(x, y) {
		AbortMission(e, m)
		return
	}
	if vortexButton(width).contains(x, y) {
		TriggerVortex(e, m)
		return
	}
	if id, ok := enemyAt(m, x, y); ok {
		ShootEnemy(e, m, id)
		return
	}
	MoveShip(e, x)
}

// ShootEnemy fires at one enemy and draws the beam to it
func ShootEnemy(e *ecs.ECS, m *components.MissionData, id uint64) bool {
	_, y, visible := spriteCenter(e, m, id)
	res, ok := m.Loop.Shoot(id)
	if !ok {
		return false
	}

	if ship, ok := GetShip(e); ok && visible {
		ship.BeamTTL = cfg.Effects.BeamFrames
		ship.BeamTop = y
	}
	if res.Boss {
		TriggerGlitch(e, m)
	}
	return true
}

// FireBeam shoots the lowest enemy in the column above the ship
func FireBeam(e *ecs.ECS, m *components.MissionData) bool {
	ship, ok := GetShip(e)
	if !ok {
		return false
	}

	m.Beam.X = ship.X - m.Beam.W/2
	m.Beam.Y = 0
	m.Beam.Update()

	if id, ok := enemyInBeam(m, ship.Y); ok {
		return ShootEnemy(e, m, id)
	}
	// A miss still shows the beam
	ship.BeamTTL = cfg.Effects.BeamFrames
	ship.BeamTop = 0
	return false
}

// TriggerVortex fires the area clear when the charge is full
func TriggerVortex(e *ecs.ECS, m *components.MissionData) bool {
	_, ok := m.Loop.UseVortex()
	return ok
}

// enemyAt returns the topmost enemy whose box contains (x, y)
func enemyAt(m *components.MissionData, x, y float64) (uint64, bool) {
	m.Cursor.X = x
	m.Cursor.Y = y
	m.Cursor.Update()

	check := m.Cursor.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return 0, false
	}

	var best uint64
	found := false
	for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
		if !(rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}).contains(x, y) {
			continue
		}
		// later spawns are drawn on top
		if id, ok := objectEnemyID(obj); ok && (!found || id > best) {
			best, found = id, true
		}
	}
	return best, found
}

// enemyInBeam returns the lowest enemy overlapping the beam column above floor
func enemyInBeam(m *components.MissionData, floor float64) (uint64, bool) {
	check := m.Beam.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return 0, false
	}

	var best uint64
	bestBottom := 0.0
	found := false
	for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
		if obj.X+obj.W <= m.Beam.X || obj.X >= m.Beam.X+m.Beam.W || obj.Y >= floor {
			continue
		}
		bottom := obj.Y + obj.H
		if id, ok := objectEnemyID(obj); ok && (!found || bottom > bestBottom) {
			best, bestBottom, found = id, bottom, true
		}
	}
	return best, found
}

func objectEnemyID(obj *resolv.Object) (uint64, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return 0, false
	}
	return components.EnemySprite.Get(entry).ID, true
}

// clampShipX keeps the ship fully on screen
func clampShipX(x float64) float64 {
	half := cfg.Ship.Width / 2
	return gamemath.Clamp(x, half, float64(cfg.C.Width)-half)
}
