package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcServer(t *testing.T, handler func(w http.ResponseWriter, req map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStaticProvider(t *testing.T) {
	s, err := StaticProvider{Address: "  abc  ", Cluster: "devnet"}.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Session{Address: "abc", Cluster: "devnet"}, s)

	_, err = StaticProvider{}.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "short", Session{Address: "short"}.ShortAddress())
	assert.Equal(t, "DEBUG_WALLET...23456789", Session{Address: DebugAddress}.ShortAddress())
}

func TestDebugWalletGetsMockAssets(t *testing.T) {
	c := NewRPCCatalog("http://127.0.0.1:0", time.Second, 1)
	assets, err := c.Assets(context.Background(), DebugAddress)
	require.NoError(t, err)
	require.Len(t, assets, 5)

	boss, ok := Find(assets, "mock_boss")
	require.True(t, ok)
	assert.Equal(t, "MEGASCAM", boss.Name)
	assert.Equal(t, 10.0, boss.Amount)
	assert.False(t, boss.Dust)
}

func newKey() string {
	return solana.NewWallet().PublicKey().String()
}

func tokenAccount(mint, uiAmount string) string {
	return fmt.Sprintf(`{"pubkey":%q,"account":{"lamports":2039280,"owner":%q,"executable":false,"rentEpoch":0,
		"data":{"program":"spl-token","parsed":{"type":"account","info":{"mint":%q,"tokenAmount":{"uiAmount":%s}}},"space":165}}}`,
		newKey(), solana.TokenProgramID.String(), mint, uiAmount)
}

func tokenAccountsResult(accounts ...string) string {
	return `{"jsonrpc":"2.0","id":1,"result":{"context":{"slot":1},"value":[` + strings.Join(accounts, ",") + `]}}`
}

func TestRPCCatalogParsesTokenAccounts(t *testing.T) {
	owner := newKey()
	srv := rpcServer(t, func(w http.ResponseWriter, req map[string]any) {
		assert.Equal(t, "getTokenAccountsByOwner", req["method"])
		params := req["params"].([]any)
		require.Len(t, params, 3)
		assert.Equal(t, owner, params[0])
		assert.Equal(t, solana.TokenProgramID.String(), params[1].(map[string]any)["programId"])
		assert.Equal(t, "jsonParsed", params[2].(map[string]any)["encoding"])

		_, _ = w.Write([]byte(tokenAccountsResult(
			tokenAccount("abcdef123", "0.25"),
			tokenAccount("xy", "42"),
			tokenAccount("nullamt", "null"),
		)))
	})

	c := NewRPCCatalog(srv.URL, time.Second, 1)
	assets, err := c.Assets(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, Asset{ID: "abcdef123", Mint: "abcdef123", Name: "ABCD", Amount: 0.25, Dust: true}, assets[0])
	assert.Equal(t, Asset{ID: "xy", Mint: "xy", Name: "XY", Amount: 42, Dust: false}, assets[1])
	assert.Equal(t, 0.0, assets[2].Amount)
	assert.True(t, assets[2].Dust)
}

func TestEmptyWalletGetsGhosts(t *testing.T) {
	srv := rpcServer(t, func(w http.ResponseWriter, _ map[string]any) {
		_, _ = w.Write([]byte(tokenAccountsResult()))
	})

	assets, err := NewRPCCatalog(srv.URL, time.Second, 1).Assets(context.Background(), newKey())
	require.NoError(t, err)
	assert.Equal(t, GhostAssets(), assets)
}

func TestRPCErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"rpc error object", `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid param"}}`},
		{"missing result", `{"jsonrpc":"2.0","id":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := rpcServer(t, func(w http.ResponseWriter, _ map[string]any) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := NewRPCCatalog(srv.URL, time.Second, 1).Assets(context.Background(), newKey())
			assert.ErrorIs(t, err, ErrRPC)
		})
	}
}

func TestRPCHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRPCCatalog(srv.URL, time.Second, 1).Assets(context.Background(), newKey())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRPC))
}

func TestCatalogRejectsBadOwner(t *testing.T) {
	c := NewRPCCatalog("http://127.0.0.1:0", time.Second, 1)

	_, err := c.Assets(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoSession)

	for _, owner := range []string{"not-a-key", "owner1", "0OIl"} {
		_, err = c.Assets(context.Background(), owner)
		assert.ErrorIs(t, err, ErrInvalidAddress, owner)
	}
}

func TestSimulatedDisposal(t *testing.T) {
	d := SimulatedDisposal{}
	asset := MockAssets()[0]

	r, err := d.Burn(context.Background(), Session{Address: DebugAddress}, asset)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.Signature, "MOCK_SIGNATURE_"))
	assert.Equal(t, asset.Mint, r.Mint)

	r, err = d.Burn(context.Background(), Session{Address: "real"}, asset)
	require.NoError(t, err)
	assert.Equal(t, "REAL_BURN_SIMULATED", r.Signature)

	_, err = d.Burn(context.Background(), Session{}, asset)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSimulatedDisposalHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SimulatedDisposal{Delay: time.Hour}.Burn(ctx, Session{Address: "real"}, MockAssets()[0])
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJobSettles(t *testing.T) {
	release := make(chan struct{})
	job := Start(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	})
	assert.Equal(t, OutcomePending, job.Outcome())

	close(release)
	assert.Equal(t, OutcomeSuccess, job.Wait())
	v, err := job.Result()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestJobFailureAndCancel(t *testing.T) {
	job := Start(context.Background(), func(ctx context.Context) (Receipt, error) {
		return SimulatedDisposal{Delay: time.Hour}.Burn(ctx, Session{Address: "real"}, MockAssets()[0])
	})
	job.Cancel()

	assert.Equal(t, OutcomeFailure, job.Wait())
	_, err := job.Result()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "failure", job.Outcome().String())
}

func TestArcadeAssets(t *testing.T) {
	out := ArcadeAssets(MockAssets())
	require.Len(t, out, 5)
	assert.Equal(t, "MEGASCAM", out[4].Name)
	assert.Equal(t, 10.0, out[4].Quantity)
	assert.Equal(t, "mock_boss", out[4].ID)
}
