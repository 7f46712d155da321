package wallet

import (
	"strings"

	"github.com/automoto/dustdemons/arcade"
)

// Asset is one token holding.
type Asset struct {
	ID     string
	Mint   string
	Name   string
	Amount float64
	Dust   bool
}

// Arcade converts the holding into the arcade's enemy source.
func (a Asset) Arcade() arcade.Asset {
	return arcade.Asset{ID: a.ID, Name: a.Name, Quantity: a.Amount}
}

// ArcadeAssets converts a list of holdings.
func ArcadeAssets(assets []Asset) []arcade.Asset {
	out := make([]arcade.Asset, len(assets))
	for i, a := range assets {
		out[i] = a.Arcade()
	}
	return out
}

// Find returns the holding with the given id.
func Find(assets []Asset, id string) (Asset, bool) {
	for _, a := range assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// tokenName is a placeholder until token metadata is fetched: the first four
// characters of the mint, upper-cased.
func tokenName(mint string) string {
	if len(mint) > 4 {
		mint = mint[:4]
	}
	return strings.ToUpper(mint)
}

// MockAssets are served to the debug wallet.
func MockAssets() []Asset {
	return []Asset{
		{ID: "mock1", Name: "DUSK", Amount: 0.05, Dust: true, Mint: "mint1"},
		{ID: "mock2", Name: "SCAM", Amount: 0.12, Dust: true, Mint: "mint2"},
		{ID: "mock3", Name: "RUG", Amount: 0.01, Dust: true, Mint: "mint3"},
		{ID: "mock4", Name: "DRAIN", Amount: 0.001, Dust: true, Mint: "mint4"},
		{ID: "mock_boss", Name: "MEGASCAM", Amount: 10.0, Dust: false, Mint: "mint_boss"},
	}
}

// GhostAssets stand in for an empty wallet so there is always something to hunt.
func GhostAssets() []Asset {
	return []Asset{
		{ID: "ghost1", Name: "DUSK", Amount: 0.05, Dust: true, Mint: "ghost_mint_1"},
		{ID: "ghost2", Name: "SCAM", Amount: 0.12, Dust: true, Mint: "ghost_mint_2"},
		{ID: "ghost3", Name: "RUG", Amount: 0.01, Dust: true, Mint: "ghost_mint_3"},
	}
}
