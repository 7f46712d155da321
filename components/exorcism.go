package components

import (
	"github.com/automoto/dustdemons/arcade"
	"github.com/automoto/dustdemons/wallet"
	"github.com/yohamta/donburi"
)

// ExorcismOption is a button of the burn confirmation
type ExorcismOption int

const (
	ExorcismBurn ExorcismOption = iota
	ExorcismSpare
)

// ExorcismData is the burn confirmation shown after a kill. While it is open
// the arcade loop is paused.
type ExorcismData struct {
	Open     bool
	Kill     arcade.KillEvent
	Asset    wallet.Asset
	Selected ExorcismOption
	Job      *wallet.Job[wallet.Receipt] // nil until BURN is chosen
	Err      error                       // last failed burn, shown until retried
	Frames   int                         // frames since opening, drives the impact text
}

// Burning reports whether a disposal is in flight.
func (d *ExorcismData) Burning() bool {
	return d.Job != nil && d.Job.Outcome() == wallet.OutcomePending
}

var Exorcism = donburi.NewComponentType[ExorcismData]()
