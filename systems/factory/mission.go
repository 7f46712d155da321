package factory

import (
	"github.com/automoto/dustdemons/arcade"
	"github.com/automoto/dustdemons/archetypes"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/timers"
	"github.com/automoto/dustdemons/wallet"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hitCellSize = 8

// CreateMission spawns the mission singleton and starts its arcade loop.
// data carries the session, assets, hunter and dimension; the loop, juice
// timers, hit space and sprite index are created here.
func CreateMission(e *ecs.ECS, data components.MissionData, opts ...arcade.Option) *donburi.Entry {
	entry := archetypes.Mission.Spawn(e)

	space, cursor, beam := CreateSpace(cfg.C.Width, cfg.C.Height, hitCellSize, hitCellSize, cfg.Ship.BeamWidth)
	data.Space = space
	data.Cursor = cursor
	data.Beam = beam
	data.Juice = timers.New()
	data.Sprites = intmap.New[uint64, donburi.Entity](32)

	base := []arcade.Option{
		arcade.WithConfig(cfg.Arcade),
		arcade.WithViewport(float64(cfg.C.Width), float64(cfg.C.Height)),
	}
	data.Loop = arcade.New(wallet.ArcadeAssets(data.Assets), append(base, opts...)...)

	components.Mission.SetValue(entry, data)
	return entry
}
