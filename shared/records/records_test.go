package records

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func TestShareText(t *testing.T) {
	assert.Equal(t,
		"I just exorcised 0.05 $DUSK demons from my wallet! 🔥 Final score: 300. Purge your filth on @DustDemons #SolanaMonolith #SolanaMobile",
		ShareText(0.05, "DUSK", 300))
	assert.Contains(t, ShareText(10, "MEGASCAM", 0), "exorcised 10 $MEGASCAM")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.001", FormatAmount(0.001))
	assert.Equal(t, "10", FormatAmount(10))
	assert.Equal(t, "0.12", FormatAmount(0.12))
}

func TestRecordCapsHistory(t *testing.T) {
	p := &Profile{}
	for i := 1; i <= 25; i++ {
		p.Record(BurnRecord{Token: "DUSK", Score: i * 100}, 20)
	}
	assert.Len(t, p.Burns, 20)
	assert.Equal(t, 25, p.TotalBurns)
	assert.Equal(t, 2500, p.Burns[0].Score, "newest first")
	assert.Equal(t, 600, p.Burns[19].Score)
	assert.Equal(t, 2500, p.BestScore)
}

func TestRecordReportsNewBest(t *testing.T) {
	p := &Profile{BestScore: 500}
	assert.False(t, p.Record(BurnRecord{Score: 400}, 20))
	assert.True(t, p.Record(BurnRecord{Score: 900}, 20))
	assert.Equal(t, 900, p.BestScore)

	assert.False(t, p.Observe(900))
	assert.True(t, p.Observe(901))
}

func TestSaveAndLoad(t *testing.T) {
	store := newMemStore()

	p, err := Load(store)
	require.NoError(t, err)
	assert.Zero(t, p.BestScore)

	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.Record(BurnRecord{Address: "owner", Token: "RUG", Mint: "mint3", Amount: 0.01, Score: 1200, Signature: "sig", Time: when}, 20)
	require.NoError(t, Save(store, p))

	got, err := Load(store)
	require.NoError(t, err)
	assert.Equal(t, 1200, got.BestScore)
	require.Len(t, got.Burns, 1)
	assert.Equal(t, "RUG", got.Burns[0].Token)
	assert.True(t, when.Equal(got.Burns[0].Time))
}

func TestLoadErrors(t *testing.T) {
	store := newMemStore()
	store.items[profileKey] = []byte("{not json")
	p, err := Load(store)
	assert.Error(t, err)
	assert.NotNil(t, p)

	broken := &memStore{err: errors.New("disk gone")}
	_, err = Load(broken)
	assert.Error(t, err)
	assert.Error(t, Save(broken, &Profile{}))
}
