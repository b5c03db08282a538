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

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(db *pgxpool.Pool) portsrepo.PersonRepository {
	return &PgxPersonRepository{BaseRepository{Pool: db}}
}

// Ensure PgxPersonRepository implements portsrepo.PersonRepository
var _ portsrepo.PersonRepository = (*PgxPersonRepository)(nil)

// Helper to convert domain.Person to models.Person
func toModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID: d.PersonID,
		OwnerID:  d.OwnerID,
		Name:     d.Name,
		Type:     string(d.Type),
		Phone:    d.Phone,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Person to domain.Person
func toDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID: m.PersonID,
		OwnerID:  m.OwnerID,
		Name:     m.Name,
		Type:     domain.PersonType(m.Type),
		Phone:    m.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	m := toModelPerson(person)
	query := `
        INSERT INTO people (person_id, owner_id, name, type, phone, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PersonID,
		m.OwnerID,
		m.Name,
		m.Type,
		m.Phone,
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
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

func (r *PgxPersonRepository) FindPersonByName(ctx context.Context, ownerID, name string) (*domain.Person, error) {
	query := `
		SELECT person_id, owner_id, name, type, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM people
		WHERE owner_id = $1 AND name = $2;
	`
	var m models.Person
	err := r.Pool.QueryRow(ctx, query, ownerID, name).Scan(
		&m.PersonID,
		&m.OwnerID,
		&m.Name,
		&m.Type,
		&m.Phone,
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
		return nil, fmt.Errorf("failed to find person by name %q: %w", name, err)
	}
	d := toDomainPerson(m)
	return &d, nil
}

func (r *PgxPersonRepository) ListPeople(ctx context.Context, ownerID string) ([]domain.Person, error) {
	query := `
        SELECT person_id, owner_id, name, type, phone, created_at, created_by, last_updated_at, last_updated_by
        FROM people
        WHERE owner_id = $1
        ORDER BY name ASC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, apperrors.ErrBackendNotReady
		}
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	modelPeople, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Person, error) {
		var m models.Person
		err := row.Scan(
			&m.PersonID,
			&m.OwnerID,
			&m.Name,
			&m.Type,
			&m.Phone,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect person rows: %w", err)
	}

	people := make([]domain.Person, len(modelPeople))
	for i, m := range modelPeople {
		people[i] = toDomainPerson(m)
	}
	return people, nil
}

func (r *PgxPersonRepository) DeletePerson(ctx context.Context, ownerID, personID string) error {
	query := `DELETE FROM people WHERE person_id = $1 AND owner_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, personID, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to delete person %s: %w", personID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
