package systems

import (
	"context"
	"log"

	cfg "github.com/automoto/dustdemons/config"
	"github.com/automoto/dustdemons/wallet"
)

// Collaborators behind the home screen and the exorcism modal
var (
	walletProvider wallet.Provider
	assetCatalog   wallet.Catalog
	assetDisposal  wallet.Disposal
)

// InitWallet installs the wallet collaborators. Nil arguments fall back to
// the configured defaults.
func InitWallet(provider wallet.Provider, catalog wallet.Catalog, disposal wallet.Disposal) {
	if provider == nil {
		address := cfg.Debug.Address
		if cfg.Debug.DebugWallet {
			address = wallet.DebugAddress
		}
		provider = wallet.StaticProvider{Address: address, Cluster: cfg.Wallet.Cluster}
	}
	if catalog == nil {
		catalog = wallet.NewRPCCatalog(cfg.Wallet.RPCEndpoint, cfg.Wallet.RequestTimeout, cfg.Wallet.DustThreshold)
	}
	if disposal == nil {
		disposal = wallet.SimulatedDisposal{Delay: cfg.Wallet.BurnDelay}
	}
	walletProvider = provider
	assetCatalog = catalog
	assetDisposal = disposal
}

func ensureWallet() {
	if walletProvider == nil || assetCatalog == nil || assetDisposal == nil {
		InitWallet(walletProvider, assetCatalog, assetDisposal)
	}
}

// ConnectWallet authorizes a session in the background.
func ConnectWallet() *wallet.Job[wallet.Session] {
	ensureWallet()
	return wallet.Start(context.Background(), func(ctx context.Context) (wallet.Session, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Wallet.RequestTimeout)
		defer cancel()
		return walletProvider.Connect(ctx)
	})
}

// ScanAssets fetches the session's holdings in the background.
func ScanAssets(session wallet.Session) *wallet.Job[[]wallet.Asset] {
	ensureWallet()
	return wallet.Start(context.Background(), func(ctx context.Context) ([]wallet.Asset, error) {
		assets, err := assetCatalog.Assets(ctx, session.Address)
		if err != nil {
			return nil, err
		}
		log.Printf("[wallet] scanned %d assets for %s", len(assets), session.ShortAddress())
		return assets, nil
	})
}

// BurnAsset disposes of a killed demon's holding in the background.
func BurnAsset(session wallet.Session, asset wallet.Asset) *wallet.Job[wallet.Receipt] {
	ensureWallet()
	return wallet.Start(context.Background(), func(ctx context.Context) (wallet.Receipt, error) {
		return assetDisposal.Burn(ctx, session, asset)
	})
}
