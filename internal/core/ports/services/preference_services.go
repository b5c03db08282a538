package services

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// PreferenceSvcFacade defines operations for per-user UI preferences.
// Reads fall back to defaults when no row exists yet.
type PreferenceSvcFacade interface {
	GetPreference(ctx context.Context, userID string) (*domain.Preference, error)
	SavePreference(ctx context.Context, userID string, req dto.SavePreferenceRequest) (*domain.Preference, error)
}
