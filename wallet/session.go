// Package wallet holds the collaborators around the arcade: the wallet
// session, the asset catalog that turns token accounts into demons, and the
// disposal action that burns a killed demon's token.
package wallet

import (
	"context"
	"errors"
	"strings"
)

// DebugAddress connects a mock wallet with a fixed set of demo assets.
const DebugAddress = "DEBUG_WALLET_ADDRESS_123456789"

var ErrNoSession = errors.New("wallet: no session")

// Session is an authorized wallet account.
type Session struct {
	Address string
	Cluster string
}

// Debug reports whether the session belongs to the mock wallet.
func (s Session) Debug() bool {
	return s.Address == DebugAddress
}

// ShortAddress abbreviates the address the way the home screen shows it.
func (s Session) ShortAddress() string {
	if len(s.Address) <= 20 {
		return s.Address
	}
	return s.Address[:12] + "..." + s.Address[len(s.Address)-8:]
}

// Provider authorizes a wallet account.
type Provider interface {
	Connect(ctx context.Context) (Session, error)
}

// StaticProvider connects to a preconfigured address.
type StaticProvider struct {
	Address string
	Cluster string
}

func (p StaticProvider) Connect(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return Session{}, ErrNoSession
	}
	return Session{Address: address, Cluster: p.Cluster}, nil
}
