package arcade

import "time"

// Config contains the arcade loop tuning values
type Config struct {
	// Spawning
	SpawnInterval time.Duration
	FallMin       time.Duration
	FallMax       time.Duration
	EnemyWidth    float64 // spawn X is drawn from [0, viewport width - EnemyWidth]
	FallOvershoot float64 // a fall runs from -FallOvershoot to height+FallOvershoot

	// Health
	NormalHealth int
	BossHealth   int

	// Boss eligibility: quantity above threshold OR a roll above BossRoll
	BossQuantityThreshold float64
	BossRoll              float64

	// Scoring
	ComboWindow   time.Duration
	MaxMultiplier int
	KillPoints    int
	VortexPoints  int // per live enemy

	// Vortex charge
	ChargeMax      int
	HitCharge      int
	KillCharge     int
	BossKillCharge int
}

// Default viewport used when the host does not supply one.
const (
	DefaultViewportWidth  = 360
	DefaultViewportHeight = 640
)

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		SpawnInterval: 2000 * time.Millisecond,
		FallMin:       5000 * time.Millisecond,
		FallMax:       8000 * time.Millisecond,
		EnemyWidth:    100,
		FallOvershoot: 100,

		NormalHealth: 1,
		BossHealth:   5,

		BossQuantityThreshold: 5,
		BossRoll:              0.8,

		ComboWindow:   1000 * time.Millisecond,
		MaxMultiplier: 10,
		KillPoints:    100,
		VortexPoints:  500,

		ChargeMax:      100,
		HitCharge:      5,
		KillCharge:     10,
		BossKillCharge: 20,
	}
}
