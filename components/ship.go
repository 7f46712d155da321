package components

import (
	cfg "github.com/automoto/dustdemons/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShipData is the hunter's ship. X is its center; it springs toward Target.
type ShipData struct {
	Hunter  cfg.HunterConfig
	X       float64
	Y       float64
	Target  float64
	Tween   *gween.Tween
	BeamTTL int // frames the fire beam stays drawn
	BeamTop float64
}

var Ship = donburi.NewComponentType[ShipData]()
