package repositories

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// PersonRepository persists counterparties, scoped by owner. SavePerson
// reports apperrors.ErrDuplicate when the owner already has a person with the
// same name.
type PersonRepository interface {
	SavePerson(ctx context.Context, person domain.Person) error
	FindPersonByName(ctx context.Context, ownerID, name string) (*domain.Person, error)
	ListPeople(ctx context.Context, ownerID string) ([]domain.Person, error)
	DeletePerson(ctx context.Context, ownerID, personID string) error
}
