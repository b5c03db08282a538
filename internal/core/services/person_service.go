package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portsrepo "github.com/smart-ledger/ledger-backend/internal/core/ports/repositories"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// personService implements the PersonSvcFacade interface
type personService struct {
	BaseService
	personRepo portsrepo.PersonRepository
}

// NewPersonService creates a new person service
func NewPersonService(repo portsrepo.PersonRepository) portssvc.PersonSvcFacade {
	return &personService{personRepo: repo}
}

// Ensure personService implements the PersonSvcFacade interface
var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) CreatePerson(ctx context.Context, userID string, req dto.CreatePersonRequest) (*domain.Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: person name must not be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	person := domain.Person{
		PersonID: uuid.NewString(),
		OwnerID:  userID,
		Name:     name,
		Type:     req.Type,
		Phone:    strings.TrimSpace(req.Phone),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.personRepo.SavePerson(ctx, person); err != nil {
		s.LogError(ctx, err, "Failed to save person", slog.String("person_name", name))
		return nil, err
	}

	return &person, nil
}

func (s *personService) GetPersonByName(ctx context.Context, userID string, name string) (*domain.Person, error) {
	return s.personRepo.FindPersonByName(ctx, userID, name)
}

func (s *personService) ListPeople(ctx context.Context, userID string) ([]domain.Person, error) {
	return s.personRepo.ListPeople(ctx, userID)
}

func (s *personService) DeletePerson(ctx context.Context, userID string, personID string) error {
	if err := s.personRepo.DeletePerson(ctx, userID, personID); err != nil {
		s.LogError(ctx, err, "Failed to delete person", slog.String("person_id", personID))
		return err
	}
	return nil
}
