// Package records keeps the player's profile between runs: best score and
// a capped history of confirmed burns. Storage is abstracted so the game
// can back it with gdata and tests with a map.
package records

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const profileKey = "profile"

// BurnRecord is one confirmed exorcism.
type BurnRecord struct {
	Address   string    `json:"address"`
	Token     string    `json:"token"`
	Mint      string    `json:"mint"`
	Amount    float64   `json:"amount"`
	Score     int       `json:"score"`
	Signature string    `json:"signature"`
	Hunter    string    `json:"hunter"`
	Dimension string    `json:"dimension"`
	Time      time.Time `json:"time"`
}

// Profile is everything persisted across runs.
type Profile struct {
	BestScore  int          `json:"bestScore"`
	TotalBurns int          `json:"totalBurns"`
	Burns      []BurnRecord `json:"burns"` // newest first
}

// Store is the key/value persistence the profile lives in. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Record adds a burn, keeps at most limit entries and reports whether the
// burn set a new best score.
func (p *Profile) Record(r BurnRecord, limit int) bool {
	p.TotalBurns++
	p.Burns = append([]BurnRecord{r}, p.Burns...)
	if limit > 0 && len(p.Burns) > limit {
		p.Burns = p.Burns[:limit]
	}
	if r.Score > p.BestScore {
		p.BestScore = r.Score
		return true
	}
	return false
}

// Observe updates the best score from a run that ended without a burn.
func (p *Profile) Observe(score int) bool {
	if score > p.BestScore {
		p.BestScore = score
		return true
	}
	return false
}

// Load reads the profile. A missing item yields an empty profile.
func Load(store Store) (*Profile, error) {
	data, err := store.LoadItem(profileKey)
	if err != nil {
		return &Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if len(data) == 0 {
		return &Profile{}, nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return &Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// Save writes the profile.
func Save(store Store, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := store.SaveItem(profileKey, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// FormatAmount prints a token amount with the shortest exact representation.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// ShareText is the message offered on the result card.
func ShareText(amount float64, token string, score int) string {
	return fmt.Sprintf(
		"I just exorcised %s $%s demons from my wallet! 🔥 Final score: %d. Purge your filth on @DustDemons #SolanaMonolith #SolanaMobile",
		FormatAmount(amount), token, score,
	)
}
