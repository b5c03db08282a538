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

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		OwnerID:         d.OwnerID,
		Name:            d.Name,
		Amount:          d.Amount,
		Type:            string(d.Type),
		PersonType:      string(d.PersonType),
		Note:            d.Note,
		AdditionalNotes: d.AdditionalNotes,
		Date:            d.Date,
		Site:            d.Site.SiteName(),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		OwnerID:         m.OwnerID,
		Name:            m.Name,
		Amount:          m.Amount,
		Type:            domain.TransactionType(m.Type),
		PersonType:      domain.PersonType(m.PersonType),
		Note:            m.Note,
		AdditionalNotes: m.AdditionalNotes,
		Date:            m.Date,
		Site:            domain.NamedSite(m.Site),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, owner_id, name, amount, type, person_type, note, additional_notes, date, site, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Name,
		m.Amount,
		m.Type,
		m.PersonType,
		m.Note,
		m.AdditionalNotes,
		m.Date,
		m.Site,
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
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, owner_id, name, amount, type, person_type, note, additional_notes, date, site, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, ownerID).Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Name,
		&m.Amount,
		&m.Type,
		&m.PersonType,
		&m.Note,
		&m.AdditionalNotes,
		&m.Date,
		&m.Site,
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
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := `
        SELECT transaction_id, owner_id, name, amount, type, person_type, note, additional_notes, date, site, created_at, created_by, last_updated_at, last_updated_by
        FROM transactions
        WHERE owner_id = $1
        ORDER BY date DESC, created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, apperrors.ErrBackendNotReady
		}
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var m models.Transaction
		err := row.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.Name,
			&m.Amount,
			&m.Type,
			&m.PersonType,
			&m.Note,
			&m.AdditionalNotes,
			&m.Date,
			&m.Site,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transaction rows: %w", err)
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = toDomainTransaction(m)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET name = $3, amount = $4, type = $5, person_type = $6, note = $7, additional_notes = $8, date = $9, site = $10, last_updated_at = $11, last_updated_by = $12
        WHERE transaction_id = $1 AND owner_id = $2;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Name,
		m.Amount,
		m.Type,
		m.PersonType,
		m.Note,
		m.AdditionalNotes,
		m.Date,
		m.Site,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		if isUndefinedTable(err) {
			return apperrors.ErrBackendNotReady
		}
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
