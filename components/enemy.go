package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemySpriteData mirrors a live arcade enemy on screen. The resolv object
// follows the enemy each frame and is the tap/beam hit box.
type EnemySpriteData struct {
	ID       uint64
	Object   *resolv.Object
	Boss     bool
	Label    string
	HitTimer int // frames the health bar stays visible after a hit
}

var EnemySprite = donburi.NewComponentType[EnemySpriteData]()
