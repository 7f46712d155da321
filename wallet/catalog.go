package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var (
	ErrRPC            = errors.New("wallet: rpc error")
	ErrInvalidAddress = errors.New("wallet: invalid address")
)

// Catalog lists the holdings of a wallet.
type Catalog interface {
	Assets(ctx context.Context, owner string) ([]Asset, error)
}

// RPCCatalog reads token accounts from a Solana JSON-RPC endpoint.
type RPCCatalog struct {
	Client        *rpc.Client
	Timeout       time.Duration
	DustThreshold float64
}

func NewRPCCatalog(endpoint string, timeout time.Duration, dustThreshold float64) *RPCCatalog {
	return &RPCCatalog{
		Client:        rpc.New(endpoint),
		Timeout:       timeout,
		DustThreshold: dustThreshold,
	}
}

// parsedTokenAccount is the jsonParsed form of an SPL token account.
type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			Mint        string `json:"mint"`
			TokenAmount struct {
				UIAmount *float64 `json:"uiAmount"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

// Assets returns the owner's token holdings. The debug address gets the mock
// list and an empty wallet gets ghost assets.
func (c *RPCCatalog) Assets(ctx context.Context, owner string) ([]Asset, error) {
	if owner == DebugAddress {
		return MockAssets(), nil
	}
	if owner == "" {
		return nil, ErrNoSession
	}
	pubkey, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidAddress, owner, err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	out, err := c.Client.GetTokenAccountsByOwner(ctx, pubkey,
		&rpc.GetTokenAccountsConfig{ProgramId: solana.TokenProgramID.ToPointer()},
		&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingJSONParsed, Commitment: rpc.CommitmentConfirmed},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: get token accounts: %v", ErrRPC, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: empty result", ErrRPC)
	}

	assets := make([]Asset, 0, len(out.Value))
	for _, v := range out.Value {
		if v == nil || v.Account.Data == nil {
			continue
		}
		var acc parsedTokenAccount
		if err := json.Unmarshal(v.Account.Data.GetRawJSON(), &acc); err != nil {
			return nil, fmt.Errorf("decode token account %s: %w", v.Pubkey, err)
		}
		info := acc.Parsed.Info
		amount := 0.0
		if info.TokenAmount.UIAmount != nil {
			amount = *info.TokenAmount.UIAmount
		}
		assets = append(assets, Asset{
			ID:     info.Mint,
			Mint:   info.Mint,
			Name:   tokenName(info.Mint),
			Amount: amount,
			Dust:   amount < c.DustThreshold,
		})
	}

	if len(assets) == 0 {
		return GhostAssets(), nil
	}
	return assets, nil
}
