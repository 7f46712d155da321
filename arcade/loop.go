// Package arcade implements the shooter's enemy lifecycle, scoring, combo and
// vortex rules. It is headless: the host drives it with Advance and forwards
// player input to Shoot and UseVortex.
package arcade

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/automoto/dustdemons/tags"
	"github.com/automoto/dustdemons/timers"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Rand is the randomness the loop draws spawns from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Loop is one running arcade session. It is not safe for concurrent use; the
// host serializes every call (ebiten's Update goroutine).
type Loop struct {
	cfg    Config
	world  donburi.World
	index  *intmap.Map[uint64, donburi.Entity]
	timers *timers.Scheduler
	spawn  *timers.Handle
	rng    Rand
	events Events

	assets []Asset
	width  float64
	height float64

	run    RunState
	nextID uint64
	paused bool
	closed bool
}

type Option func(*Loop)

func WithConfig(cfg Config) Option {
	return func(l *Loop) { l.cfg = cfg }
}

func WithRand(r Rand) Option {
	return func(l *Loop) { l.rng = r }
}

func WithEvents(e Events) Option {
	return func(l *Loop) { l.events = e }
}

// WithViewport sets the playfield size used for spawn positions and fall paths.
func WithViewport(width, height float64) Option {
	return func(l *Loop) {
		l.width = width
		l.height = height
	}
}

var enemyQuery = donburi.NewQuery(filter.Contains(tags.Enemy, Enemy))

// New creates a loop for the given assets. Spawning starts immediately when
// the asset list is non-empty.
func New(assets []Asset, opts ...Option) *Loop {
	l := &Loop{
		cfg:    DefaultConfig(),
		world:  donburi.NewWorld(),
		index:  intmap.New[uint64, donburi.Entity](32),
		timers: timers.New(),
		width:  DefaultViewportWidth,
		height: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	l.SetAssets(assets)
	return l
}

// SetAssets replaces the asset list, e.g. when the catalog arrives late.
// The spawn interval restarts; an empty list suppresses spawning.
func (l *Loop) SetAssets(assets []Asset) {
	if l.closed {
		return
	}
	l.assets = append(l.assets[:0], assets...)

	l.spawn.Cancel()
	l.spawn = nil
	if len(l.assets) > 0 {
		l.spawn = l.timers.Every(l.cfg.SpawnInterval, func() { l.Spawn() })
	}
}

// Advance moves loop time forward by dt. Spawns and fall completions are
// applied at the instant they become due, so one large step behaves like many
// small ones.
func (l *Loop) Advance(dt time.Duration) {
	if l.closed || l.paused || dt <= 0 {
		return
	}
	target := l.timers.Now() + dt

	for {
		next, ok := l.timers.Next()
		if !ok || next > target {
			break
		}
		step := next - l.timers.Now()
		l.stepFalls(step)
		l.timers.Advance(step)
		if l.closed {
			return
		}
	}

	l.stepFalls(target - l.timers.Now())
	l.timers.Advance(target - l.timers.Now())
}

// stepFalls advances every fall tween and despawns enemies whose fall finished.
func (l *Loop) stepFalls(dt time.Duration) {
	if dt <= 0 {
		return
	}
	seconds := float32(dt.Seconds())

	var finished []*donburi.Entry
	enemyQuery.Each(l.world, func(e *donburi.Entry) {
		fall := Fall.Get(e)
		current, done := fall.Tween.Update(seconds)
		fall.Progress = float64(current)
		if done {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		id := Enemy.Get(e).ID
		l.remove(e)
		l.events.despawn(id)
	}
}

// SetPaused freezes loop time while the host shows an overlay.
func (l *Loop) SetPaused(paused bool) {
	l.paused = paused
}

func (l *Loop) Paused() bool {
	return l.paused
}

// Close cancels the spawn interval and every in-flight fall. After Close the
// loop ignores all calls and never invokes a listener again.
func (l *Loop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.spawn.Cancel()
	l.timers.Stop()
	l.clearEnemies()
	l.events = Events{}
}

func (l *Loop) Closed() bool {
	return l.closed
}

// Now returns the loop's clock.
func (l *Loop) Now() time.Duration {
	return l.timers.Now()
}

// Run returns a copy of the run counters.
func (l *Loop) Run() RunState {
	return l.run
}

func (l *Loop) Assets() []Asset {
	return l.assets
}

func (l *Loop) EnemyCount() int {
	return enemyQuery.Count(l.world)
}

// EnemyView is a read-only snapshot of a live enemy.
type EnemyView struct {
	ID           uint64
	X            float64
	Y            float64
	Progress     float64
	FallDuration time.Duration
	Health       int
	MaxHealth    int
	Boss         bool
	Asset        Asset
}

// Enemies returns every live enemy ordered by spawn.
func (l *Loop) Enemies() []EnemyView {
	views := make([]EnemyView, 0, l.EnemyCount())
	enemyQuery.Each(l.world, func(e *donburi.Entry) {
		views = append(views, l.view(e))
	})
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Enemy returns the enemy with the given id if it is still alive.
func (l *Loop) Enemy(id uint64) (EnemyView, bool) {
	e, ok := l.entry(id)
	if !ok {
		return EnemyView{}, false
	}
	return l.view(e), true
}

func (l *Loop) view(e *donburi.Entry) EnemyView {
	enemy := Enemy.Get(e)
	health := Health.Get(e)
	fall := Fall.Get(e)
	return EnemyView{
		ID:           enemy.ID,
		X:            enemy.X,
		Y:            -l.cfg.FallOvershoot + fall.Progress*(l.height+2*l.cfg.FallOvershoot),
		Progress:     fall.Progress,
		FallDuration: enemy.FallDuration,
		Health:       health.Current,
		MaxHealth:    health.Max,
		Boss:         enemy.Boss,
		Asset:        enemy.Asset,
	}
}

func (l *Loop) entry(id uint64) (*donburi.Entry, bool) {
	entity, ok := l.index.Get(id)
	if !ok || !l.world.Valid(entity) {
		return nil, false
	}
	return l.world.Entry(entity), true
}

func (l *Loop) remove(e *donburi.Entry) {
	l.index.Del(Enemy.Get(e).ID)
	l.world.Remove(e.Entity())
}

func (l *Loop) clearEnemies() int {
	var entries []*donburi.Entry
	enemyQuery.Each(l.world, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		l.remove(e)
	}
	return len(entries)
}
