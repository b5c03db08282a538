package dto

import (
	"time"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
)

// CreatePersonRequest defines the data needed to register a counterparty.
type CreatePersonRequest struct {
	Name  string            `json:"name" binding:"required"`
	Type  domain.PersonType `json:"type" binding:"required,oneof=worker supplier"`
	Phone string            `json:"phone"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID  string            `json:"personID"`
	Name      string            `json:"name"`
	Type      domain.PersonType `json:"type"`
	Phone     string            `json:"phone,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ListPeopleResponse wraps the owner's people collection.
type ListPeopleResponse struct {
	People        []PersonResponse `json:"people"`
	SetupRequired bool             `json:"setupRequired,omitempty"`
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(person *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:  person.PersonID,
		Name:      person.Name,
		Type:      person.Type,
		Phone:     person.Phone,
		CreatedAt: person.CreatedAt,
	}
}

// ToListPeopleResponse converts a slice of domain.Person to ListPeopleResponse DTO
func ToListPeopleResponse(people []domain.Person, setupRequired bool) ListPeopleResponse {
	res := make([]PersonResponse, len(people))
	for i, person := range people {
		res[i] = ToPersonResponse(&person)
	}
	return ListPeopleResponse{
		People:        res,
		SetupRequired: setupRequired,
	}
}
