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

type PgxSiteRepository struct {
	BaseRepository
}

func newPgxSiteRepository(db *pgxpool.Pool) portsrepo.SiteRepository {
	return &PgxSiteRepository{BaseRepository{Pool: db}}
}

// Ensure PgxSiteRepository implements portsrepo.SiteRepository
var _ portsrepo.SiteRepository = (*PgxSiteRepository)(nil)

// Helper to convert domain.Site to models.Site
func toModelSite(d domain.Site) models.Site {
	return models.Site{
		SiteID:      d.SiteID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Budget:      d.Budget,
		CreatedDate: d.CreatedDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Site to domain.Site
func toDomainSite(m models.Site) domain.Site {
	return domain.Site{
		SiteID:      m.SiteID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Budget:      m.Budget,
		CreatedDate: m.CreatedDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxSiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	m := toModelSite(site)
	query := `
        INSERT INTO sites (site_id, owner_id, name, budget, created_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.SiteID,
		m.OwnerID,
		m.Name,
		m.Budget,
		m.CreatedDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to save site: %w", err)
	}
	return nil
}

func (r *PgxSiteRepository) FindSiteByID(ctx context.Context, ownerID, siteID string) (*domain.Site, error) {
	query := `
		SELECT site_id, owner_id, name, budget, created_date, created_at, created_by, last_updated_at, last_updated_by
		FROM sites
		WHERE site_id = $1 AND owner_id = $2;
	`
	var m models.Site
	err := r.Pool.QueryRow(ctx, query, siteID, ownerID).Scan(
		&m.SiteID,
		&m.OwnerID,
		&m.Name,
		&m.Budget,
		&m.CreatedDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUndefinedTable(err) {
			return nil, apperrors.ErrBackendNotReady
		}
		return nil, fmt.Errorf("failed to find site by ID %s: %w", siteID, err)
	}
	d := toDomainSite(m)
	return &d, nil
}

func (r *PgxSiteRepository) ListSites(ctx context.Context, ownerID string) ([]domain.Site, error) {
	query := `
        SELECT site_id, owner_id, name, budget, created_date, created_at, created_by, last_updated_at, last_updated_by
        FROM sites
        WHERE owner_id = $1
        ORDER BY created_date DESC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, apperrors.ErrBackendNotReady
		}
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	modelSites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Site, error) {
		var m models.Site
		err := row.Scan(
			&m.SiteID,
			&m.OwnerID,
			&m.Name,
			&m.Budget,
			&m.CreatedDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect site rows: %w", err)
	}

	sites := make([]domain.Site, len(modelSites))
	for i, m := range modelSites {
		sites[i] = toDomainSite(m)
	}
	return sites, nil
}

func (r *PgxSiteRepository) DeleteSite(ctx context.Context, ownerID, siteID string) error {
	// Only the site row goes; transactions keep their attribution.
	query := `DELETE FROM sites WHERE site_id = $1 AND owner_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, siteID, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to delete site %s: %w", siteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
