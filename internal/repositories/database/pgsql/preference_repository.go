package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	"github.com/smart-ledger/ledger-backend/internal/models"
)

type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(db *pgxpool.Pool) portsrepo.PreferenceRepository {
	return &PgxPreferenceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxPreferenceRepository implements portsrepo.PreferenceRepository
var _ portsrepo.PreferenceRepository = (*PgxPreferenceRepository)(nil)

func (r *PgxPreferenceRepository) UpsertPreference(ctx context.Context, pref domain.Preference) error {
	query := `
        INSERT INTO user_preferences (owner_id, user_name, language, theme, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (owner_id) DO UPDATE SET
            user_name = EXCLUDED.user_name,
            language = EXCLUDED.language,
            theme = EXCLUDED.theme,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.Pool.Exec(ctx, query,
		pref.OwnerID,
		pref.UserName,
		pref.Language,
		pref.Theme,
		pref.UpdatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, ownerID string) (*domain.Preference, error) {
	query := `
		SELECT owner_id, user_name, language, theme, updated_at
		FROM user_preferences
		WHERE owner_id = $1;
	`
	var m models.Preference
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&m.OwnerID,
		&m.UserName,
		&m.Language,
		&m.Theme,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUndefinedTable(err) {
			return nil, apperrors.ErrBackendNotReady
		}
		return nil, fmt.Errorf("failed to find preference: %w", err)
	}
	return &domain.Preference{
		OwnerID:   m.OwnerID,
		UserName:  m.UserName,
		Language:  m.Language,
		Theme:     m.Theme,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
