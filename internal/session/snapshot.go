package session

import (
	"encoding/json"
	"time"

	"github.com/internship-hub-portal/internal/models"
)

const snapshotVersion = 1

// profileSnapshot is the cached profile written under the "user" key
type profileSnapshot struct {
	Version int                 `json:"version"`
	Profile *models.UserProfile `json:"profile"`
	SavedAt time.Time           `json:"saved_at"`
}

func encodeSnapshot(profile *models.UserProfile, now time.Time) (string, error) {
	data, err := json.Marshal(profileSnapshot{
		Version: snapshotVersion,
		Profile: profile,
		SavedAt: now.UTC(),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeSnapshot returns the cached profile, or false when the stored value
// does not match the current schema. A mismatch is a cache miss.
func decodeSnapshot(raw string) (*models.UserProfile, bool) {
	var snap profileSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, false
	}
	if snap.Version != snapshotVersion || snap.Profile == nil {
		return nil, false
	}
	p := snap.Profile
	if p.ID == "" || p.Role == "" {
		return nil, false
	}
	if models.NormalizeRole(string(p.Role)) != p.Role {
		return nil, false
	}
	return p, true
}
