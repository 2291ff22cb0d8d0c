package ordertech

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Settings is the single OrderTech connection record: the locally generated
// API key authenticating inbound calls and the platform bearer token
// authenticating outbound calls.
type Settings struct {
	// ID is the local record identifier
	ID int64
	// Name is the instance display name
	Name string
	// BaseURL is the remote platform base URL
	BaseURL string
	// APIKey authenticates inbound calls from the platform
	APIKey string
	// BearerToken authenticates outbound calls to the platform
	BearerToken string
	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}

// HasToken reports whether outbound sync is possible.
func (s *Settings) HasToken() bool {
	return s != nil && s.BearerToken != ""
}

// SettingsRepository provides access to the OrderTech settings record.
type SettingsRepository interface {
	// Get retrieves the settings record, ErrSettingsMissing when absent
	Get(ctx context.Context) (*Settings, error)
	// Save persists the settings record
	Save(ctx context.Context, settings *Settings) error
	// SetBearerToken stores a newly registered platform token
	SetBearerToken(ctx context.Context, token string) error
}

// GenerateAPIKey returns a 64-character hex key for inbound authentication.
func GenerateAPIKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
