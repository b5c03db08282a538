package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/core/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

// In-memory repositories so imports and exports run against real service
// validation instead of mock expectations.

type memTxnRepo struct {
	txns []domain.Transaction
}

func (r *memTxnRepo) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.txns = append(r.txns, txn)
	return nil
}

func (r *memTxnRepo) FindTransactionByID(_ context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID && r.txns[i].OwnerID == ownerID {
			return &r.txns[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memTxnRepo) ListTransactions(_ context.Context, ownerID string) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(r.txns))
	for _, txn := range r.txns {
		if txn.OwnerID == ownerID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *memTxnRepo) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	for i := range r.txns {
		if r.txns[i].TransactionID == txn.TransactionID && r.txns[i].OwnerID == txn.OwnerID {
			r.txns[i] = txn
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *memTxnRepo) DeleteTransaction(_ context.Context, ownerID, transactionID string) error {
	for i := range r.txns {
		if r.txns[i].TransactionID == transactionID && r.txns[i].OwnerID == ownerID {
			r.txns = append(r.txns[:i], r.txns[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type memSiteRepo struct {
	sites []domain.Site
}

func (r *memSiteRepo) SaveSite(_ context.Context, site domain.Site) error {
	for _, existing := range r.sites {
		if existing.OwnerID == site.OwnerID && existing.Name == site.Name {
			return apperrors.ErrDuplicate
		}
	}
	r.sites = append(r.sites, site)
	return nil
}

func (r *memSiteRepo) FindSiteByID(_ context.Context, ownerID, siteID string) (*domain.Site, error) {
	for i := range r.sites {
		if r.sites[i].SiteID == siteID && r.sites[i].OwnerID == ownerID {
			return &r.sites[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memSiteRepo) ListSites(_ context.Context, ownerID string) ([]domain.Site, error) {
	out := make([]domain.Site, 0, len(r.sites))
	for _, site := range r.sites {
		if site.OwnerID == ownerID {
			out = append(out, site)
		}
	}
	return out, nil
}

func (r *memSiteRepo) DeleteSite(_ context.Context, ownerID, siteID string) error {
	for i := range r.sites {
		if r.sites[i].SiteID == siteID && r.sites[i].OwnerID == ownerID {
			r.sites = append(r.sites[:i], r.sites[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type memPersonRepo struct {
	people []domain.Person
}

func (r *memPersonRepo) SavePerson(_ context.Context, person domain.Person) error {
	for _, existing := range r.people {
		if existing.OwnerID == person.OwnerID && existing.Name == person.Name {
			return apperrors.ErrDuplicate
		}
	}
	r.people = append(r.people, person)
	return nil
}

func (r *memPersonRepo) FindPersonByName(_ context.Context, ownerID, name string) (*domain.Person, error) {
	for i := range r.people {
		if r.people[i].OwnerID == ownerID && r.people[i].Name == name {
			return &r.people[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memPersonRepo) ListPeople(_ context.Context, ownerID string) ([]domain.Person, error) {
	out := make([]domain.Person, 0, len(r.people))
	for _, person := range r.people {
		if person.OwnerID == ownerID {
			out = append(out, person)
		}
	}
	return out, nil
}

func (r *memPersonRepo) DeletePerson(_ context.Context, ownerID, personID string) error {
	for i := range r.people {
		if r.people[i].PersonID == personID && r.people[i].OwnerID == ownerID {
			r.people = append(r.people[:i], r.people[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type SpreadsheetServiceTestSuite struct {
	suite.Suite
	txnRepo    *memTxnRepo
	siteRepo   *memSiteRepo
	personRepo *memPersonRepo
	txnSvc     portssvc.TransactionSvcFacade
	service    portssvc.SpreadsheetSvcFacade
}

func (suite *SpreadsheetServiceTestSuite) SetupTest() {
	suite.txnRepo = &memTxnRepo{}
	suite.siteRepo = &memSiteRepo{}
	suite.personRepo = &memPersonRepo{}
	suite.txnSvc = services.NewTransactionService(suite.txnRepo)
	siteSvc := services.NewSiteService(suite.siteRepo)
	personSvc := services.NewPersonService(suite.personRepo)
	suite.service = services.NewSpreadsheetService(suite.txnSvc, siteSvc, personSvc)
}

func (suite *SpreadsheetServiceTestSuite) TestImportTemplateRoundTrip() {
	ctx := context.Background()

	template, err := suite.service.BuildTemplate(ctx)
	suite.Require().NoError(err)

	report, err := suite.service.ImportWorkbook(ctx, "user-1", bytes.NewReader(template))
	suite.Require().NoError(err)

	suite.Equal(4, report.PeopleAdded)
	suite.Equal(2, report.SitesAdded)
	suite.Equal(4, report.TransactionsAdded)
	suite.Equal(0, report.DuplicatesSkipped)
	suite.Empty(report.RowErrors)

	// The site tag travels inside the transaction name and the attribution is
	// derived from it.
	txns, err := suite.txnRepo.ListTransactions(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Require().Len(txns, 4)
	suite.Equal("Ramesh Kumar/Site A - Building", txns[0].Name)
	suite.Equal("Site A - Building", txns[0].Site.SiteName())
}

func (suite *SpreadsheetServiceTestSuite) TestImportTwiceSkipsDuplicates() {
	ctx := context.Background()

	template, err := suite.service.BuildTemplate(ctx)
	suite.Require().NoError(err)

	_, err = suite.service.ImportWorkbook(ctx, "user-1", bytes.NewReader(template))
	suite.Require().NoError(err)

	report, err := suite.service.ImportWorkbook(ctx, "user-1", bytes.NewReader(template))
	suite.Require().NoError(err)

	suite.Equal(0, report.PeopleAdded)
	suite.Equal(0, report.SitesAdded)
	suite.Equal(6, report.DuplicatesSkipped)
	suite.Empty(report.RowErrors)
}

func (suite *SpreadsheetServiceTestSuite) TestImportAccumulatesRowErrors() {
	ctx := context.Background()

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), "People")
	suite.Require().NoError(f.SetSheetRow("People", "A1", &[]interface{}{"name", "type", "phone"}))
	suite.Require().NoError(f.SetSheetRow("People", "A2", &[]interface{}{"", 0, "123"}))
	suite.Require().NoError(f.SetSheetRow("People", "A3", &[]interface{}{"Ramesh", 0, "456"}))

	_, err := f.NewSheet("Transactions")
	suite.Require().NoError(err)
	suite.Require().NoError(f.SetSheetRow("Transactions", "A1", &[]interface{}{"person_name", "amount", "type", "date", "site_name", "note"}))
	suite.Require().NoError(f.SetSheetRow("Transactions", "A2", &[]interface{}{"Nobody", 500, 1, "2024-01-15", "", ""}))
	suite.Require().NoError(f.SetSheetRow("Transactions", "A3", &[]interface{}{"Ramesh", 500, 1, "2024-01-15", "", "wage"}))

	var buf bytes.Buffer
	suite.Require().NoError(f.Write(&buf))
	suite.Require().NoError(f.Close())

	report, err := suite.service.ImportWorkbook(ctx, "user-1", &buf)
	suite.Require().NoError(err)

	// The nameless person row and the unknown-person transaction both fail,
	// but the good rows still land.
	suite.Equal(1, report.PeopleAdded)
	suite.Equal(1, report.TransactionsAdded)
	suite.Require().Len(report.RowErrors, 2)
	suite.Equal("People", report.RowErrors[0].Sheet)
	suite.Equal(2, report.RowErrors[0].Row)
	suite.Equal("Transactions", report.RowErrors[1].Sheet)
}

func (suite *SpreadsheetServiceTestSuite) TestImportRejectsGarbageFile() {
	ctx := context.Background()

	_, err := suite.service.ImportWorkbook(ctx, "user-1", bytes.NewReader([]byte("not a workbook")))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SpreadsheetServiceTestSuite) seedTransaction(name string, amount int64, txnType domain.TransactionType) {
	_, err := suite.txnSvc.CreateTransaction(context.Background(), "user-1", dto.CreateTransactionRequest{
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		Type:       txnType,
		PersonType: domain.Worker,
		Note:       "wage",
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
}

func (suite *SpreadsheetServiceTestSuite) TestExportAllTransactions() {
	ctx := context.Background()
	suite.seedTransaction("Ramesh/SiteA", 500, domain.MoneyOut)
	suite.seedTransaction("Vijay", 300, domain.MoneyIn)

	out, err := suite.service.ExportAllTransactions(ctx, "user-1")
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("All Transactions")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal([]string{"Date", "Person Name", "Person Type", "Type", "Amount", "Site", "Note"}, rows[0])
}

func (suite *SpreadsheetServiceTestSuite) TestExportPersonReportSummary() {
	ctx := context.Background()
	suite.seedTransaction("Ramesh/SiteA", 500, domain.MoneyOut)
	suite.seedTransaction("Ramesh/SiteA", 200, domain.MoneyIn)
	suite.seedTransaction("Vijay", 300, domain.MoneyIn)

	out, err := suite.service.ExportPersonReport(ctx, "user-1", "Ramesh/SiteA")
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 8)
	suite.Equal([]string{"Person Name", "Ramesh/SiteA"}, rows[1])
	suite.Equal("Net Balance", rows[6][0])
	suite.Equal("-300", rows[6][1])
	suite.Equal([]string{"Status", "You will pay"}, rows[7])

	detail, err := f.GetRows("Transactions")
	suite.Require().NoError(err)
	suite.Len(detail, 3)
}

func (suite *SpreadsheetServiceTestSuite) TestExportPersonReportUnknownPerson() {
	ctx := context.Background()

	_, err := suite.service.ExportPersonReport(ctx, "user-1", "Nobody")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSpreadsheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SpreadsheetServiceTestSuite))
}
