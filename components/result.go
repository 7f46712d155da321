package components

import (
	"time"

	"github.com/automoto/dustdemons/wallet"
	"github.com/yohamta/donburi"
)

// ResultOption is a button of the result card
type ResultOption int

const (
	ResultShare ResultOption = iota
	ResultDone
)

// ResultData is the certificate shown after a confirmed burn
type ResultData struct {
	Asset     wallet.Asset
	Receipt   wallet.Receipt
	Score     int
	Best      int
	NewBest   bool
	Hunter    string
	Dimension string
	ShareText string
	Shared    bool
	Selected  ResultOption
	Time      time.Time
}

var Result = donburi.NewComponentType[ResultData]()
