package repositories

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// PreferenceRepository persists per-user UI preferences (one row per user,
// full-row upsert).
type PreferenceRepository interface {
	UpsertPreference(ctx context.Context, pref domain.Preference) error
	FindPreference(ctx context.Context, ownerID string) (*domain.Preference, error)
}
