package tags

import "github.com/yohamta/donburi"

var (
	Enemy        = donburi.NewTag().SetName("Enemy")
	Ship         = donburi.NewTag().SetName("Ship")
	Particle     = donburi.NewTag().SetName("Particle")
	FloatingText = donburi.NewTag().SetName("FloatingText")
	Loot         = donburi.NewTag().SetName("Loot")
)

// Resolv tags for hit testing
const (
	ResolvEnemy  = "Enemy"
	ResolvCursor = "Cursor"
	ResolvBeam   = "Beam"
)
