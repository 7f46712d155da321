package arcade_test

import (
	"testing"

	"github.com/automoto/dustdemons/arcade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnN(t *testing.T, l *arcade.Loop, n int) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		id, ok := l.Spawn()
		require.True(t, ok)
		ids = append(ids, id)
	}
	return ids
}

func TestComboScenario(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)
	ids := spawnN(t, l, 3)

	var combos, points []int
	shoot := func(id uint64) {
		res, ok := l.Shoot(id)
		require.True(t, ok)
		require.Equal(t, arcade.ShotKill, res.Kind)
		combos = append(combos, res.Combo)
		points = append(points, res.Points)
	}

	shoot(ids[0])
	l.Advance(ms(500))
	shoot(ids[1])
	l.Advance(ms(400))
	shoot(ids[2])

	assert.Equal(t, []int{1, 2, 3}, combos)
	assert.Equal(t, []int{100, 200, 300}, points)
	assert.Equal(t, 600, l.Run().Score)
	assert.Equal(t, []int{100, 300, 600}, rec.scores)
	require.Len(t, rec.kills, 3)
	assert.Equal(t, dust, rec.kills[0].Asset)
	assert.Equal(t, ids[2], rec.kills[2].EnemyID)
}

func TestComboWindow(t *testing.T) {
	tests := []struct {
		name string
		gap  int
		want int
	}{
		{name: "inside window", gap: 999, want: 2},
		{name: "at window", gap: 1000, want: 1},
		{name: "past window", gap: 1500, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLoop([]arcade.Asset{dust}, &recorder{})
			ids := spawnN(t, l, 2)

			_, ok := l.Shoot(ids[0])
			require.True(t, ok)
			l.Advance(ms(tt.gap))
			res, ok := l.Shoot(ids[1])
			require.True(t, ok)

			assert.Equal(t, tt.want, res.Combo)
			assert.Equal(t, 100*tt.want, res.Points)
		})
	}
}

func TestMultiplierCapsAtTen(t *testing.T) {
	l := newLoop([]arcade.Asset{dust}, &recorder{})
	ids := spawnN(t, l, 12)

	prev := 0
	for i, id := range ids {
		res, ok := l.Shoot(id)
		require.True(t, ok)
		assert.Equal(t, i+1, res.Combo)
		assert.Equal(t, arcade.Multiplier(res.Combo, 10), res.Multiplier)
		assert.Equal(t, 100*min(i+1, 10), res.Points)

		score := l.Run().Score
		assert.Equal(t, prev+res.Points, score)
		prev = score
	}
	assert.Equal(t, 100*(55+10+10), l.Run().Score)
}

func TestBossScenario(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{whale}, rec)
	id, ok := l.Spawn()
	require.True(t, ok)

	for i := 1; i <= 4; i++ {
		res, ok := l.Shoot(id)
		require.True(t, ok)
		assert.Equal(t, arcade.ShotHit, res.Kind)
		assert.Equal(t, 5-i, res.Health)
		assert.Equal(t, 5*i, res.Charge)
		assert.Equal(t, 0, l.Run().Score)
		assert.Equal(t, 0, l.Run().Combo)
	}
	assert.Len(t, rec.hits, 4)
	assert.Empty(t, rec.scores)

	res, ok := l.Shoot(id)
	require.True(t, ok)
	assert.Equal(t, arcade.ShotKill, res.Kind)
	assert.True(t, res.Boss)
	assert.Equal(t, 1, res.Combo)
	assert.Equal(t, 100, res.Points)
	assert.Equal(t, 40, l.Run().Charge)
	assert.Equal(t, 1, l.Run().BossKills)
	require.Len(t, rec.kills, 1)
	assert.True(t, rec.kills[0].Boss)

	_, ok = l.Shoot(id)
	assert.False(t, ok)
}

func TestChargeClamped(t *testing.T) {
	l := newLoop([]arcade.Asset{whale}, &recorder{})
	ids := spawnN(t, l, 8)

	for _, id := range ids {
		for {
			res, ok := l.Shoot(id)
			require.True(t, ok)
			assert.GreaterOrEqual(t, res.Charge, 0)
			assert.LessOrEqual(t, res.Charge, 100)
			if res.Kind == arcade.ShotKill {
				break
			}
		}
	}
	assert.Equal(t, 100, l.Run().Charge)
}

func TestVortexNeedsFullCharge(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)
	spawnN(t, l, 2)

	_, ok := l.UseVortex()
	assert.False(t, ok)
	assert.False(t, l.VortexReady())
	assert.Equal(t, 2, l.EnemyCount())
	assert.Empty(t, rec.vortexes)
}

func TestVortexScenario(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)

	// ten spaced-out kills fill the charge
	for i := 0; i < 10; i++ {
		id, _ := l.Spawn()
		_, ok := l.Shoot(id)
		require.True(t, ok)
		l.Advance(ms(1000))
	}
	require.Equal(t, 100, l.Run().Charge)
	require.True(t, l.VortexReady())

	for l.EnemyCount() > 0 {
		id := l.Enemies()[0].ID
		_, ok := l.Shoot(id)
		require.True(t, ok)
	}
	spawnN(t, l, 3)
	before := l.Run().Score
	kills := len(rec.kills)

	ev, ok := l.UseVortex()
	require.True(t, ok)

	assert.Equal(t, arcade.VortexEvent{Cleared: 3, Points: 1500}, ev)
	assert.Equal(t, before+1500, l.Run().Score)
	assert.Equal(t, 0, l.EnemyCount())
	assert.Equal(t, 0, l.Run().Charge)
	assert.Len(t, rec.kills, kills)
	assert.Equal(t, []arcade.VortexEvent{ev}, rec.vortexes)
	assert.Equal(t, before+1500, rec.scores[len(rec.scores)-1])
}

func TestPausedLoopRejectsShots(t *testing.T) {
	rec := &recorder{}
	l := newLoop([]arcade.Asset{dust}, rec)

	for i := 0; i < 10; i++ {
		id, _ := l.Spawn()
		_, ok := l.Shoot(id)
		require.True(t, ok)
		l.Advance(ms(1000))
	}
	require.True(t, l.VortexReady())

	id := spawnN(t, l, 1)[0]
	score := l.Run().Score
	scores := len(rec.scores)
	live := l.EnemyCount()
	l.SetPaused(true)

	_, ok := l.Shoot(id)
	assert.False(t, ok)
	_, ok = l.UseVortex()
	assert.False(t, ok)
	assert.Equal(t, live, l.EnemyCount())
	assert.Equal(t, score, l.Run().Score)
	assert.Equal(t, 100, l.Run().Charge)
	assert.Len(t, rec.scores, scores)
	assert.Empty(t, rec.vortexes)

	l.SetPaused(false)
	res, ok := l.Shoot(id)
	require.True(t, ok)
	assert.Equal(t, arcade.ShotKill, res.Kind)
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 1, arcade.Multiplier(0, 10))
	assert.Equal(t, 1, arcade.Multiplier(1, 10))
	assert.Equal(t, 7, arcade.Multiplier(7, 10))
	assert.Equal(t, 10, arcade.Multiplier(42, 10))
}
