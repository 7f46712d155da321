package components

import (
	"github.com/automoto/dustdemons/wallet"
	"github.com/yohamta/donburi"
)

// HomeOption represents the available home screen selections
type HomeOption int

const (
	HomeConnect HomeOption = iota // CONNECT WALLET, or START MISSION once connected
	HomeSettings
	HomeExit
)

// HomeData stores the state of the home screen
type HomeData struct {
	Selected HomeOption
	Status   string // error or progress line under the buttons
	Session  *wallet.Session
	Connect  *wallet.Job[wallet.Session]
	Scan     *wallet.Job[[]wallet.Asset]
	Best     int
	Frames   int // drives the floating ghost and pulsing button
}

// Scanning reports whether the asset scan is in flight.
func (h *HomeData) Scanning() bool {
	return h.Scan != nil && h.Scan.Outcome() == wallet.OutcomePending
}

var Home = donburi.NewComponentType[HomeData]()
