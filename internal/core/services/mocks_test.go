package services_test

import (
	"context"

	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// --- Mock SiteRepository ---

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) FindSiteByID(ctx context.Context, ownerID, siteID string) (*domain.Site, error) {
	args := m.Called(ctx, ownerID, siteID)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	return site, args.Error(1)
}

func (m *MockSiteRepository) ListSites(ctx context.Context, ownerID string) ([]domain.Site, error) {
	args := m.Called(ctx, ownerID)
	var sites []domain.Site
	if args.Get(0) != nil {
		sites = args.Get(0).([]domain.Site)
	}
	return sites, args.Error(1)
}

func (m *MockSiteRepository) DeleteSite(ctx context.Context, ownerID, siteID string) error {
	args := m.Called(ctx, ownerID, siteID)
	return args.Error(0)
}

// --- Mock PersonRepository ---

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) SavePerson(ctx context.Context, person domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) FindPersonByName(ctx context.Context, ownerID, name string) (*domain.Person, error) {
	args := m.Called(ctx, ownerID, name)
	var person *domain.Person
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.Person)
	}
	return person, args.Error(1)
}

func (m *MockPersonRepository) ListPeople(ctx context.Context, ownerID string) ([]domain.Person, error) {
	args := m.Called(ctx, ownerID)
	var people []domain.Person
	if args.Get(0) != nil {
		people = args.Get(0).([]domain.Person)
	}
	return people, args.Error(1)
}

func (m *MockPersonRepository) DeletePerson(ctx context.Context, ownerID, personID string) error {
	args := m.Called(ctx, ownerID, personID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock PreferenceRepository ---

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) UpsertPreference(ctx context.Context, pref domain.Preference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

func (m *MockPreferenceRepository) FindPreference(ctx context.Context, ownerID string) (*domain.Preference, error) {
	args := m.Called(ctx, ownerID)
	var pref *domain.Preference
	if args.Get(0) != nil {
		pref = args.Get(0).(*domain.Preference)
	}
	return pref, args.Error(1)
}
