package systems

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/dustdemons/components"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/systems/factory"
	"github.com/automoto/dustdemons/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fixedRand spawns every enemy at x=0 with the shortest fall and never rolls a boss.
type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0 }
func (fixedRand) IntN(int) int     { return 0 }

type fakeDisposal struct {
	receipt wallet.Receipt
	err     error
}

func (d fakeDisposal) Burn(ctx context.Context, session wallet.Session, asset wallet.Asset) (wallet.Receipt, error) {
	return d.receipt, d.err
}

var dusk = wallet.Asset{ID: "mock1", Mint: "mint1", Name: "DUSK", Amount: 0.05, Dust: true}

func newTestMission(t *testing.T, assets ...wallet.Asset) (*ecs.ECS, *components.MissionData) {
	t.Helper()
	profile = nil
	t.Cleanup(func() { profile = nil })

	e := ecs.NewECS(donburi.NewWorld())
	m := StartMission(e, MissionSetup{
		Session: wallet.Session{Address: wallet.DebugAddress, Cluster: "devnet"},
		Assets:  assets,
		Hunter:  cfg.Hunters[0],
		Rand:    fixedRand{},
	})
	return e, m
}

func installDisposal(t *testing.T, d wallet.Disposal) {
	t.Helper()
	InitWallet(wallet.StaticProvider{Address: wallet.DebugAddress}, nil, d)
	t.Cleanup(func() {
		walletProvider, assetCatalog, assetDisposal = nil, nil, nil
	})
}

// spawnVisible spawns an enemy and lets it fall on screen for the given time
func spawnVisible(t *testing.T, e *ecs.ECS, m *components.MissionData, fall time.Duration) uint64 {
	t.Helper()
	id, ok := m.Loop.Spawn()
	require.True(t, ok)
	m.Loop.Advance(fall)
	syncEnemySprites(e, m)
	return id
}

func killFirst(t *testing.T, e *ecs.ECS, m *components.MissionData) uint64 {
	t.Helper()
	id := spawnVisible(t, e, m, time.Second)
	require.True(t, ShootEnemy(e, m, id))
	return id
}

func TestStartMission(t *testing.T) {
	e, m := newTestMission(t, dusk)

	assert.Equal(t, components.MissionRunning, m.Outcome)
	assert.Equal(t, 0, m.Best)
	assert.Equal(t, 0, m.Loop.EnemyCount())

	ship, ok := GetShip(e)
	require.True(t, ok)
	assert.Equal(t, float64(cfg.C.Width)/2, ship.X)
	assert.Equal(t, cfg.Hunters[0].Name, ship.Hunter.Name)
}

func TestUpdateMissionMirrorsEnemies(t *testing.T) {
	e, m := newTestMission(t, dusk)

	// First spawn is due after one interval
	ticks := int(cfg.Arcade.SpawnInterval/(time.Second/time.Duration(cfg.C.TPS))) + 1
	for i := 0; i < ticks; i++ {
		UpdateMission(e)
	}

	views := m.Loop.Enemies()
	require.Len(t, views, 1)
	assert.Equal(t, 1, m.Sprites.Len())

	entry, ok := spriteEntry(e, m, views[0].ID)
	require.True(t, ok)
	sprite := components.EnemySprite.Get(entry)
	assert.Equal(t, views[0].X, sprite.Object.X)
	assert.Equal(t, views[0].Y, sprite.Object.Y)
	assert.Equal(t, "DUSK", sprite.Label)
	assert.Equal(t, factory.EnemySize(false), sprite.Object.W)
}

func TestUpdateMissionStopsWhenNotRunning(t *testing.T) {
	e, m := newTestMission(t, dusk)
	m.Outcome = components.MissionAborted

	UpdateMission(e)
	assert.Equal(t, time.Duration(0), m.Loop.Now())
}

func TestUpdateMissionKeepsExactTime(t *testing.T) {
	e, m := newTestMission(t, dusk)

	var second time.Duration
	for n := int64(0); n < int64(cfg.C.TPS); n++ {
		second += tickStep(n)
	}
	assert.Equal(t, time.Second, second)

	for i := 0; i < 20*cfg.C.TPS; i++ {
		UpdateMission(e)
	}
	assert.Equal(t, 20*time.Second, m.Loop.Now())
}

func TestTapOnEnemyKillsAndOpensExorcism(t *testing.T) {
	e, m := newTestMission(t, dusk)
	id := spawnVisible(t, e, m, time.Second)
	view, ok := m.Loop.Enemy(id)
	require.True(t, ok)

	size := factory.EnemySize(false)
	handleTap(e, m, view.X+size/2, view.Y+size/2)

	require.Len(t, m.Kills, 1)
	assert.Equal(t, id, m.Kills[0].EnemyID)
	assert.Equal(t, 100, m.Score)
	assert.Equal(t, 0, m.Sprites.Len())

	ship, _ := GetShip(e)
	assert.Equal(t, cfg.Effects.BeamFrames, ship.BeamTTL)
	assert.True(t, getOrCreateFlash(e).Active)

	UpdateExorcism(e)
	ex := GetOrCreateExorcism(e)
	assert.True(t, ex.Open)
	assert.Equal(t, "DUSK", ex.Asset.Name)
	assert.Equal(t, components.ExorcismBurn, ex.Selected)
	assert.True(t, m.Loop.Paused())
	assert.Empty(t, m.Kills)
}

func TestSpareResumesLoop(t *testing.T) {
	e, m := newTestMission(t, dusk)
	killFirst(t, e, m)
	UpdateExorcism(e)

	ex := GetOrCreateExorcism(e)
	require.True(t, ex.Open)

	spareDemon(m, ex)
	assert.False(t, ex.Open)
	assert.False(t, m.Loop.Paused())
	assert.Equal(t, components.MissionRunning, m.Outcome)
}

func TestGameplayChecksSkipWhileModalOpen(t *testing.T) {
	e, m := newTestMission(t, dusk)
	killFirst(t, e, m)
	UpdateExorcism(e)

	calls := 0
	WithGameplayChecks(func(*ecs.ECS) { calls++ })(e)
	assert.Equal(t, 0, calls)

	spareDemon(m, GetOrCreateExorcism(e))
	WithGameplayChecks(func(*ecs.ECS) { calls++ })(e)
	assert.Equal(t, 1, calls)
}

func TestTapOnEmptySpaceMovesShip(t *testing.T) {
	e, m := newTestMission(t, dusk)

	handleTap(e, m, 300, 300)

	ship, _ := GetShip(e)
	assert.Equal(t, clampShipX(300), ship.Target)
	assert.NotNil(t, ship.Tween)
	assert.Empty(t, m.Kills)
}

func TestFireBeamHitsLowestEnemyInColumn(t *testing.T) {
	e, m := newTestMission(t, dusk)

	first, ok := m.Loop.Spawn()
	require.True(t, ok)
	m.Loop.Advance(time.Second)
	spawnVisible(t, e, m, 500*time.Millisecond)

	ship, _ := GetShip(e)
	ship.X = factory.EnemySize(false) / 2

	assert.True(t, FireBeam(e, m))
	require.Len(t, m.Kills, 1)
	assert.Equal(t, first, m.Kills[0].EnemyID)
	assert.Equal(t, 1, m.Loop.EnemyCount())
}

func TestFireBeamMissStillDrawsBeam(t *testing.T) {
	e, m := newTestMission(t, dusk)

	assert.False(t, FireBeam(e, m))

	ship, _ := GetShip(e)
	assert.Equal(t, cfg.Effects.BeamFrames, ship.BeamTTL)
	assert.Equal(t, 0.0, ship.BeamTop)
}

func TestVortexClearsSpritesWithoutKills(t *testing.T) {
	e, m := newTestMission(t, dusk)

	for i := 0; i < cfg.Arcade.ChargeMax/cfg.Arcade.KillCharge; i++ {
		id, ok := m.Loop.Spawn()
		require.True(t, ok)
		require.True(t, ShootEnemy(e, m, id))
	}
	require.True(t, m.Loop.VortexReady())
	m.Kills = nil

	spawnVisible(t, e, m, time.Second)
	spawnVisible(t, e, m, 100*time.Millisecond)
	before := m.Loop.Run().Score

	assert.True(t, TriggerVortex(e, m))
	assert.Equal(t, 0, m.Loop.EnemyCount())
	assert.Equal(t, before+2*cfg.Arcade.VortexPoints, m.Score)
	assert.Empty(t, m.Kills)
	assert.True(t, getOrCreateGlitch(e).Active)

	syncEnemySprites(e, m)
	assert.Equal(t, 0, m.Sprites.Len())
}

func TestAbortMissionKeepsBestScore(t *testing.T) {
	e, m := newTestMission(t, dusk)
	killFirst(t, e, m)
	require.Positive(t, m.Juice.Len())

	AbortMission(e, m)
	assert.Equal(t, components.MissionAborted, m.Outcome)
	assert.True(t, m.Loop.Closed())
	assert.Equal(t, 0, m.Juice.Len())
	assert.False(t, getOrCreateFlash(e).Active)
	assert.Equal(t, 100, Profile().BestScore)
	assert.Empty(t, Profile().Burns)

	// A second abort is a no-op
	AbortMission(e, m)
	assert.Equal(t, components.MissionAborted, m.Outcome)
}

func TestBurnFinishesMission(t *testing.T) {
	installDisposal(t, fakeDisposal{receipt: wallet.Receipt{Signature: "SIG123", Mint: dusk.Mint, Amount: dusk.Amount}})
	e, m := newTestMission(t, dusk)
	killFirst(t, e, m)
	UpdateExorcism(e)

	ex := GetOrCreateExorcism(e)
	ex.Job = BurnAsset(m.Session, ex.Asset)
	require.Equal(t, wallet.OutcomeSuccess, ex.Job.Wait())

	UpdateExorcism(e)

	assert.False(t, GetOrCreateExorcism(e).Open)
	assert.Equal(t, components.MissionBurned, m.Outcome)
	assert.True(t, m.Loop.Closed())
	assert.Equal(t, 0, m.Juice.Len())
	require.NotNil(t, m.Result)
	assert.Equal(t, 100, m.Result.Score)
	assert.Equal(t, 100, m.Result.Best)
	assert.True(t, m.Result.NewBest)
	assert.Equal(t, "SIG123", m.Result.Receipt.Signature)
	assert.Equal(t, cfg.Hunters[0].Name, m.Result.Hunter)
	assert.Contains(t, m.Result.ShareText, "$DUSK")
	assert.Contains(t, m.Result.ShareText, "Final score: 100")

	p := Profile()
	require.Len(t, p.Burns, 1)
	assert.Equal(t, "DUSK", p.Burns[0].Token)
	assert.Equal(t, "SIG123", p.Burns[0].Signature)
	assert.Equal(t, wallet.DebugAddress, p.Burns[0].Address)
}

func TestBurnFailureKeepsModalOpen(t *testing.T) {
	installDisposal(t, fakeDisposal{err: errors.New("rpc down")})
	e, m := newTestMission(t, dusk)
	killFirst(t, e, m)
	UpdateExorcism(e)

	ex := GetOrCreateExorcism(e)
	ex.Job = BurnAsset(m.Session, ex.Asset)
	require.Equal(t, wallet.OutcomeFailure, ex.Job.Wait())

	UpdateExorcism(e)

	assert.True(t, ex.Open)
	assert.Nil(t, ex.Job)
	assert.EqualError(t, ex.Err, "rpc down")
	assert.Equal(t, components.MissionRunning, m.Outcome)
	assert.True(t, m.Loop.Paused())
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "000100", scoreLabel(100))
	assert.Equal(t, "1234567", scoreLabel(1234567))
}
