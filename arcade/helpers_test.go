package arcade_test

import (
	"time"

	"github.com/automoto/dustdemons/arcade"
)

// seqRand replays a fixed list of draws, cycling when exhausted.
type seqRand struct {
	draws []float64
	i     int
}

func (r *seqRand) Float64() float64 {
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

func (r *seqRand) IntN(n int) int {
	v := int(r.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// zeroRand spawns normal enemies at x=0 with the shortest fall.
func zeroRand() *seqRand {
	return &seqRand{draws: []float64{0}}
}

var (
	dust  = arcade.Asset{ID: "mock1", Name: "DUSK", Quantity: 0.05}
	whale = arcade.Asset{ID: "mock_boss", Name: "MEGASCAM", Quantity: 10}
)

type recorder struct {
	scores   []int
	kills    []arcade.KillEvent
	hits     []arcade.ShotResult
	vortexes []arcade.VortexEvent
	despawns []uint64
}

func (r *recorder) events() arcade.Events {
	return arcade.Events{
		OnScore:   func(s int) { r.scores = append(r.scores, s) },
		OnKill:    func(k arcade.KillEvent) { r.kills = append(r.kills, k) },
		OnHit:     func(s arcade.ShotResult) { r.hits = append(r.hits, s) },
		OnVortex:  func(v arcade.VortexEvent) { r.vortexes = append(r.vortexes, v) },
		OnDespawn: func(id uint64) { r.despawns = append(r.despawns, id) },
	}
}

func newLoop(assets []arcade.Asset, rec *recorder) *arcade.Loop {
	return arcade.New(assets,
		arcade.WithRand(zeroRand()),
		arcade.WithEvents(rec.events()),
		arcade.WithViewport(360, 640),
	)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
