package services

import (
	"context"
	"errors"
	"time"

	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// preferenceService implements the PreferenceSvcFacade interface
type preferenceService struct {
	BaseService
	prefRepo portsrepo.PreferenceRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo portsrepo.PreferenceRepository) portssvc.PreferenceSvcFacade {
	return &preferenceService{prefRepo: repo}
}

// Ensure preferenceService implements the PreferenceSvcFacade interface
var _ portssvc.PreferenceSvcFacade = (*preferenceService)(nil)

func (s *preferenceService) GetPreference(ctx context.Context, userID string) (*domain.Preference, error) {
	pref, err := s.prefRepo.FindPreference(ctx, userID)
	if err != nil {
		// Missing row and unprovisioned schema both mean "no stored
		// preferences yet"; hand back the zero value so clients use defaults.
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrBackendNotReady) {
			return &domain.Preference{OwnerID: userID}, nil
		}
		return nil, err
	}
	return pref, nil
}

func (s *preferenceService) SavePreference(ctx context.Context, userID string, req dto.SavePreferenceRequest) (*domain.Preference, error) {
	pref := domain.Preference{
		OwnerID:   userID,
		UserName:  req.UserName,
		Language:  req.Language,
		Theme:     req.Theme,
		UpdatedAt: time.Now(),
	}
	if err := s.prefRepo.UpsertPreference(ctx, pref); err != nil {
		s.LogError(ctx, err, "Failed to save preference")
		return nil, err
	}
	return &pref, nil
}
