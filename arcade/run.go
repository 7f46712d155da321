package arcade

import "time"

// RunState holds the counters of one session.
type RunState struct {
	Score     int
	Combo     int
	LastHit   time.Duration // loop time of the last final hit
	Charge    int
	Kills     int
	BossKills int
	Vortexes  int
}

// Multiplier returns the score multiplier for a combo.
func Multiplier(combo, limit int) int {
	if combo > limit {
		return limit
	}
	if combo < 1 {
		return 1
	}
	return combo
}

// registerKill advances the combo for a final hit at now and returns it.
// The combo continues only while the gap since the previous kill is under window.
func (r *RunState) registerKill(now, window time.Duration) int {
	if now-r.LastHit < window {
		r.Combo++
	} else {
		r.Combo = 1
	}
	r.LastHit = now
	return r.Combo
}

func (r *RunState) addCharge(amount, limit int) {
	r.Charge = clamp(r.Charge+amount, 0, limit)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
