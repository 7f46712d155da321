package arcade_test

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/dustdemons/arcade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnSuppressedWithoutAssets(t *testing.T) {
	rec := &recorder{}
	l := newLoop(nil, rec)

	l.Advance(ms(10000))

	assert.Equal(t, 0, l.EnemyCount())
	_, ok := l.Spawn()
	assert.False(t, ok)
}

func TestSpawnInterval(t *testing.T) {
	l := newLoop([]arcade.Asset{dust}, &recorder{})

	l.Advance(ms(1999))
	assert.Equal(t, 0, l.EnemyCount())

	l.Advance(ms(1))
	assert.Equal(t, 1, l.EnemyCount())

	l.Advance(ms(2000))
	assert.Equal(t, 2, l.EnemyCount())
}

func TestLateAssetsStartSpawning(t *testing.T) {
	l := newLoop(nil, &recorder{})
	l.Advance(ms(5000))
	require.Equal(t, 0, l.EnemyCount())

	l.SetAssets([]arcade.Asset{dust})
	l.Advance(ms(2000))

	assert.Equal(t, 1, l.EnemyCount())
}

func TestSpawnAttributes(t *testing.T) {
	tests := []struct {
		name       string
		asset      arcade.Asset
		draws      []float64 // x, fall, asset index, boss roll
		wantX      float64
		wantFall   int
		wantBoss   bool
		wantHealth int
	}{
		{
			name:       "normal enemy",
			asset:      dust,
			draws:      []float64{0.5, 0.5, 0, 0.5},
			wantX:      130,
			wantFall:   6500,
			wantBoss:   false,
			wantHealth: 1,
		},
		{
			name:       "boss by roll",
			asset:      dust,
			draws:      []float64{0, 1, 0, 0.9},
			wantX:      0,
			wantFall:   8000,
			wantBoss:   true,
			wantHealth: 5,
		},
		{
			name:       "boss by quantity",
			asset:      whale,
			draws:      []float64{0.25, 0, 0},
			wantX:      65,
			wantFall:   5000,
			wantBoss:   true,
			wantHealth: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := arcade.New([]arcade.Asset{tt.asset},
				arcade.WithRand(&seqRand{draws: tt.draws}),
				arcade.WithViewport(360, 640),
			)

			id, ok := l.Spawn()
			require.True(t, ok)
			e, ok := l.Enemy(id)
			require.True(t, ok)

			assert.InDelta(t, tt.wantX, e.X, 1e-9)
			assert.Equal(t, ms(tt.wantFall), e.FallDuration)
			assert.Equal(t, tt.wantBoss, e.Boss)
			assert.Equal(t, tt.wantHealth, e.Health)
			assert.Equal(t, tt.wantHealth, e.MaxHealth)
			assert.Equal(t, tt.asset, e.Asset)
		})
	}
}

func TestSpawnBounds(t *testing.T) {
	assets := []arcade.Asset{dust, whale, {ID: "rug", Name: "RUG", Quantity: 0.01}}
	l := arcade.New(assets,
		arcade.WithRand(rand.New(rand.NewPCG(1, 2))),
		arcade.WithViewport(360, 640),
	)

	for i := 0; i < 500; i++ {
		_, ok := l.Spawn()
		require.True(t, ok)
	}

	for _, e := range l.Enemies() {
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X, 260.0)
		assert.GreaterOrEqual(t, e.FallDuration, ms(5000))
		assert.LessOrEqual(t, e.FallDuration, ms(8000))
		assert.Contains(t, []int{1, 5}, e.Health)
		if e.Asset.Quantity > 5 {
			assert.True(t, e.Boss)
		}
	}
}

func TestNarrowViewportSpawnsAtZero(t *testing.T) {
	l := arcade.New([]arcade.Asset{dust},
		arcade.WithRand(&seqRand{draws: []float64{0.9}}),
		arcade.WithViewport(50, 640),
	)
	id, _ := l.Spawn()
	e, _ := l.Enemy(id)
	assert.Equal(t, 0.0, e.X)
}

func TestFallProgress(t *testing.T) {
	l := newLoop([]arcade.Asset{dust}, &recorder{})
	id, ok := l.Spawn()
	require.True(t, ok)

	e, _ := l.Enemy(id)
	assert.InDelta(t, -100, e.Y, 1e-6)

	l.Advance(ms(2500))
	e, ok = l.Enemy(id)
	require.True(t, ok)
	assert.InDelta(t, 0.5, e.Progress, 1e-4)
	assert.InDelta(t, 320, e.Y, 0.1)
}

func TestDespawnWithoutHit(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)

	l.Advance(ms(2000))
	first := l.Enemies()
	require.Len(t, first, 1)

	// spawned at 2s and 4s and 6s; the first one lands at 7s
	l.Advance(ms(5500))

	_, alive := l.Enemy(first[0].ID)
	assert.False(t, alive)
	assert.Equal(t, []uint64{first[0].ID}, rec.despawns)
	assert.Equal(t, 2, l.EnemyCount())
	assert.Equal(t, 0, l.Run().Score)
	assert.Empty(t, rec.kills)
	assert.Empty(t, rec.scores)
}

func TestPauseFreezesTime(t *testing.T) {
	l := newLoop([]arcade.Asset{dust}, &recorder{})
	l.SetPaused(true)
	l.Advance(ms(10000))

	assert.True(t, l.Paused())
	assert.Equal(t, 0, l.EnemyCount())
	assert.Equal(t, ms(0), l.Now())

	l.SetPaused(false)
	l.Advance(ms(2000))
	assert.Equal(t, 1, l.EnemyCount())
}

func TestCloseCancelsEverything(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)
	l.Advance(ms(4000))
	enemies := l.Enemies()
	require.Len(t, enemies, 2)

	l.Close()
	l.Close()

	assert.True(t, l.Closed())
	assert.Equal(t, 0, l.EnemyCount())

	l.Advance(ms(20000))
	assert.Equal(t, 0, l.EnemyCount())

	_, ok := l.Shoot(enemies[0].ID)
	assert.False(t, ok)
	_, ok = l.Spawn()
	assert.False(t, ok)
	_, ok = l.UseVortex()
	assert.False(t, ok)

	assert.Empty(t, rec.despawns)
	assert.Empty(t, rec.kills)
	assert.Empty(t, rec.scores)
}

func TestCloseFromListener(t *testing.T) {
	var l *arcade.Loop
	kills := 0
	l = arcade.New([]arcade.Asset{dust},
		arcade.WithRand(zeroRand()),
		arcade.WithEvents(arcade.Events{
			OnKill: func(arcade.KillEvent) {
				kills++
				l.Close()
			},
		}),
	)
	a, _ := l.Spawn()
	b, _ := l.Spawn()

	_, ok := l.Shoot(a)
	require.True(t, ok)
	_, ok = l.Shoot(b)

	assert.False(t, ok)
	assert.Equal(t, 1, kills)
}
