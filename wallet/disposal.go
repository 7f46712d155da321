package wallet

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"time"
)

// Receipt is the result of a successful burn.
type Receipt struct {
	Signature string
	Mint      string
	Amount    float64
}

// Disposal burns a holding.
type Disposal interface {
	Burn(ctx context.Context, session Session, asset Asset) (Receipt, error)
}

// SimulatedDisposal stands in for the on-chain burn: it waits out the
// confirmation delay and reports success.
type SimulatedDisposal struct {
	Delay time.Duration
}

func (d SimulatedDisposal) Burn(ctx context.Context, session Session, asset Asset) (Receipt, error) {
	if session.Address == "" {
		return Receipt{}, ErrNoSession
	}
	log.Printf("[exorcism] initiating burn for %s (%s)", asset.Name, asset.Mint)

	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("burn %s: %w", asset.Name, ctx.Err())
		case <-timer.C:
		}
	}

	signature := "REAL_BURN_SIMULATED"
	if session.Debug() {
		signature = "MOCK_SIGNATURE_" + strconv.FormatUint(rand.Uint64(), 36)
	}
	return Receipt{Signature: signature, Mint: asset.Mint, Amount: asset.Amount}, nil
}
