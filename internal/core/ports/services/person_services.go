package services

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// PersonReaderSvc defines read operations for person data
type PersonReaderSvc interface {
	GetPersonByName(ctx context.Context, userID string, name string) (*domain.Person, error)
	ListPeople(ctx context.Context, userID string) ([]domain.Person, error)
}

// PersonWriterSvc defines write operations for person data
type PersonWriterSvc interface {
	CreatePerson(ctx context.Context, userID string, req dto.CreatePersonRequest) (*domain.Person, error)
	DeletePerson(ctx context.Context, userID string, personID string) error
}

// PersonSvcFacade combines all person-related service interfaces
type PersonSvcFacade interface {
	PersonReaderSvc
	PersonWriterSvc
}
