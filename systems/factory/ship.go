package factory

import (
	"github.com/automoto/dustdemons/archetypes"
	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShip places the hunter's ship centered above the bottom edge.
func CreateShip(e *ecs.ECS, hunter cfg.HunterConfig) *donburi.Entry {
	ship := archetypes.Ship.Spawn(e)

	x := float64(cfg.C.Width) / 2
	components.Ship.SetValue(ship, components.ShipData{
		Hunter: hunter,
		X:      x,
		Y:      float64(cfg.C.Height) - cfg.Ship.BottomMargin - cfg.Ship.Height/2,
		Target: x,
	})
	return ship
}
