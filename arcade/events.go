package arcade

// ShotKind tells a damaging hit apart from a kill.
type ShotKind int

const (
	ShotHit ShotKind = iota
	ShotKill
)

// ShotResult describes the outcome of Loop.Shoot.
type ShotResult struct {
	EnemyID    uint64
	Kind       ShotKind
	Health     int // remaining health, 0 on a kill
	Combo      int
	Multiplier int
	Points     int
	Charge     int // charge after the shot
	Boss       bool
	Asset      Asset
}

// KillEvent is reported to the host after a final hit so it can start the
// disposal flow for the asset.
type KillEvent struct {
	EnemyID uint64
	Asset   Asset
	Boss    bool
	Combo   int
	Points  int
}

// VortexEvent is reported after the area-clear ability fires.
type VortexEvent struct {
	Cleared int
	Points  int
}

// Events are the host callbacks. Any of them may be nil.
type Events struct {
	OnScore   func(score int)
	OnKill    func(KillEvent)
	OnHit     func(ShotResult)
	OnVortex  func(VortexEvent)
	OnDespawn func(id uint64)
}

func (e Events) score(score int) {
	if e.OnScore != nil {
		e.OnScore(score)
	}
}

func (e Events) kill(k KillEvent) {
	if e.OnKill != nil {
		e.OnKill(k)
	}
}

func (e Events) hit(r ShotResult) {
	if e.OnHit != nil {
		e.OnHit(r)
	}
}

func (e Events) vortex(v VortexEvent) {
	if e.OnVortex != nil {
		e.OnVortex(v)
	}
}

func (e Events) despawn(id uint64) {
	if e.OnDespawn != nil {
		e.OnDespawn(id)
	}
}
