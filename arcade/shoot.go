package arcade

// Shoot applies one hit to the enemy with the given id. Enemies with more than
// one health point lose a point and feed the vortex a little; the final hit
// scores with the current combo, removes the enemy and reports the kill.
// It returns false if the enemy is gone or the loop is paused or closed.
func (l *Loop) Shoot(id uint64) (ShotResult, bool) {
	if l.closed || l.paused {
		return ShotResult{}, false
	}
	e, ok := l.entry(id)
	if !ok {
		return ShotResult{}, false
	}
	enemy := Enemy.Get(e)
	health := Health.Get(e)

	if health.Current > 1 {
		health.Current--
		l.run.addCharge(l.cfg.HitCharge, l.cfg.ChargeMax)

		res := ShotResult{
			EnemyID: id,
			Kind:    ShotHit,
			Health:  health.Current,
			Combo:   l.run.Combo,
			Charge:  l.run.Charge,
			Boss:    enemy.Boss,
			Asset:   enemy.Asset,
		}
		l.events.hit(res)
		return res, true
	}

	health.Current = 0
	combo := l.run.registerKill(l.Now(), l.cfg.ComboWindow)
	multiplier := Multiplier(combo, l.cfg.MaxMultiplier)
	points := l.cfg.KillPoints * multiplier
	l.run.Score += points
	l.run.Kills++

	gain := l.cfg.KillCharge
	if enemy.Boss {
		gain = l.cfg.BossKillCharge
		l.run.BossKills++
	}
	l.run.addCharge(gain, l.cfg.ChargeMax)

	res := ShotResult{
		EnemyID:    id,
		Kind:       ShotKill,
		Combo:      combo,
		Multiplier: multiplier,
		Points:     points,
		Charge:     l.run.Charge,
		Boss:       enemy.Boss,
		Asset:      enemy.Asset,
	}
	l.remove(e)

	l.events.score(l.run.Score)
	l.events.kill(KillEvent{
		EnemyID: id,
		Asset:   res.Asset,
		Boss:    res.Boss,
		Combo:   combo,
		Points:  points,
	})
	return res, true
}

// VortexReady reports whether the charge is full.
func (l *Loop) VortexReady() bool {
	return !l.closed && l.run.Charge >= l.cfg.ChargeMax
}

// UseVortex clears every live enemy for VortexPoints each and empties the
// charge. Cleared enemies are not reported as kills. Without a full charge, or
// while paused, it does nothing.
func (l *Loop) UseVortex() (VortexEvent, bool) {
	if l.paused || !l.VortexReady() {
		return VortexEvent{}, false
	}

	cleared := l.clearEnemies()
	points := l.cfg.VortexPoints * cleared
	l.run.Score += points
	l.run.Charge = 0
	l.run.Vortexes++

	ev := VortexEvent{Cleared: cleared, Points: points}
	if points > 0 {
		l.events.score(l.run.Score)
	}
	l.events.vortex(ev)
	return ev, true
}
