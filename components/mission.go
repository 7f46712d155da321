package components

import (
	"github.com/automoto/dustdemons/arcade"
	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/shared/dimension"
	"github.com/automoto/dustdemons/timers"
	"github.com/automoto/dustdemons/wallet"
	"github.com/kamstrup/intmap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MissionOutcome tells the gameplay scene where to go next
type MissionOutcome int

const (
	MissionRunning MissionOutcome = iota
	MissionAborted
	MissionBurned
)

// MissionData is the gameplay singleton: the arcade loop plus everything the
// presentation layer hangs off it.
type MissionData struct {
	Loop      *arcade.Loop
	Juice     *timers.Scheduler // flash, glitch and floating text lifetimes
	Space     *resolv.Space
	Cursor    *resolv.Object // tap probe
	Beam      *resolv.Object // keyboard fire probe
	Sprites   *intmap.Map[uint64, donburi.Entity]
	Session   wallet.Session
	Assets    []wallet.Asset
	Hunter    cfg.HunterConfig
	Dimension *dimension.Dimension

	// Ticks stepped into Loop and Juice
	LoopTicks  int64
	JuiceTicks int64

	Score   int // last value reported by the loop
	Best    int
	Kills   []arcade.KillEvent
	Outcome MissionOutcome
	Result  *ResultData
}

var Mission = donburi.NewComponentType[MissionData]()
