package arcade

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Asset is a token-like holding shown to the player as an enemy.
type Asset struct {
	ID       string
	Name     string
	Quantity float64
}

type EnemyData struct {
	ID           uint64
	X            float64
	FallDuration time.Duration
	Asset        Asset
	Boss         bool
}

type HealthData struct {
	Current int
	Max     int
}

// FallData drives an enemy from above the viewport to below it.
type FallData struct {
	Tween    *gween.Tween
	Progress float64 // 0 at spawn, 1 when the fall completes
}

var Enemy = donburi.NewComponentType[EnemyData]()
var Health = donburi.NewComponentType[HealthData]()
var Fall = donburi.NewComponentType[FallData]()
