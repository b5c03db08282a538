package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockSiteRepo *MockSiteRepository
	service      portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockSiteRepo)
}

func reportTxn(name string, amount int64, txnType domain.TransactionType, personType domain.PersonType) domain.Transaction {
	txn := domain.Transaction{
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		Type:       txnType,
		PersonType: personType,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	txn.NormalizeSite()
	return txn
}

func (suite *ReportingServiceTestSuite) TestGetBalanceReport_Totals() {
	ctx := context.Background()
	txns := []domain.Transaction{
		reportTxn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		reportTxn("Ramesh/SiteA", 200, domain.MoneyIn, domain.Worker),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()

	report, err := suite.service.GetBalanceReport(ctx, "user-1")

	suite.Require().NoError(err)
	suite.False(report.SetupRequired)
	suite.True(report.Totals.TotalIn.Equal(decimal.NewFromInt(200)))
	suite.True(report.Totals.TotalOut.Equal(decimal.NewFromInt(500)))
	suite.True(report.Totals.Net.Equal(decimal.NewFromInt(-300)))
	suite.Equal(2, report.Totals.Count)
}

func (suite *ReportingServiceTestSuite) TestGetBalanceReport_BackendNotReadyIsBenign() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(nil, apperrors.ErrBackendNotReady).Once()

	report, err := suite.service.GetBalanceReport(ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(report.SetupRequired)
	suite.Equal(0, report.Totals.Count)
	suite.True(report.Totals.Net.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetPeopleReport_SortedByMagnitude() {
	ctx := context.Background()
	txns := []domain.Transaction{
		reportTxn("Anil", 100, domain.MoneyOut, domain.Worker),
		reportTxn("Ramesh", 900, domain.MoneyOut, domain.Worker),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()

	report, err := suite.service.GetPeopleReport(ctx, "user-1", "")

	suite.Require().NoError(err)
	suite.Require().Len(report.People, 2)
	suite.Equal("Ramesh", report.People[0].Name)
	suite.Equal("Anil", report.People[1].Name)
	suite.Equal(2, report.Search.Count)
}

func (suite *ReportingServiceTestSuite) TestGetPeopleReport_QueryFiltersCaseInsensitively() {
	ctx := context.Background()
	txns := []domain.Transaction{
		reportTxn("Ramesh Kumar", 500, domain.MoneyOut, domain.Worker),
		reportTxn("Vijay Patel", 300, domain.MoneyOut, domain.Worker),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()

	report, err := suite.service.GetPeopleReport(ctx, "user-1", "RAM")

	suite.Require().NoError(err)
	suite.Require().Len(report.People, 1)
	suite.Equal("Ramesh Kumar", report.People[0].Name)
	suite.Equal(1, report.Search.Count)
	suite.True(report.Search.TotalOut.Equal(decimal.NewFromInt(500)))
}

func (suite *ReportingServiceTestSuite) TestGetSupplierReport_GroupsByPrefix() {
	ctx := context.Background()
	txns := []domain.Transaction{
		reportTxn("ABC Suppliers/SiteA", 1000, domain.MoneyOut, domain.Supplier),
		reportTxn("ABC Suppliers/SiteB", 2000, domain.MoneyOut, domain.Supplier),
		reportTxn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()

	report, err := suite.service.GetSupplierReport(ctx, "user-1", "")

	suite.Require().NoError(err)
	suite.Require().Len(report.People, 1)
	suite.Equal("ABC Suppliers", report.People[0].Name)
	suite.True(report.People[0].TotalOut.Equal(decimal.NewFromInt(3000)))
}

func (suite *ReportingServiceTestSuite) TestGetSiteReport_IncludesUncategorizedBucket() {
	ctx := context.Background()
	txns := []domain.Transaction{
		reportTxn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		reportTxn("Ramesh", 200, domain.MoneyOut, domain.Worker),
		reportTxn("Vijay", 50, domain.MoneyIn, domain.Worker),
	}
	sites := []domain.Site{{
		SiteID: "site-1",
		Name:   "SiteA",
		Budget: decimal.NewFromInt(1000),
	}}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()
	suite.mockSiteRepo.On("ListSites", ctx, "user-1").Return(sites, nil).Once()

	report, err := suite.service.GetSiteReport(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(report.Sites, 1)
	suite.True(report.Sites[0].TotalSpent.Equal(decimal.NewFromInt(500)))
	suite.True(report.Sites[0].BudgetUsedPct.Equal(decimal.NewFromInt(50)))
	suite.Equal(2, report.Uncategorized.Count)
	suite.True(report.Uncategorized.Total.Equal(decimal.NewFromInt(150)))
}

func (suite *ReportingServiceTestSuite) TestGetSiteReport_SiteTableMissingIsBenign() {
	ctx := context.Background()
	txns := []domain.Transaction{reportTxn("Ramesh", 200, domain.MoneyOut, domain.Worker)}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()
	suite.mockSiteRepo.On("ListSites", ctx, "user-1").Return(nil, apperrors.ErrBackendNotReady).Once()

	report, err := suite.service.GetSiteReport(ctx, "user-1")

	suite.Require().NoError(err)
	suite.True(report.SetupRequired)
	suite.Empty(report.Sites)
}

func (suite *ReportingServiceTestSuite) TestGetSiteSummary_SingleSite() {
	ctx := context.Background()
	site := &domain.Site{SiteID: "site-1", Name: "SiteA", Budget: decimal.NewFromInt(1000)}
	txns := []domain.Transaction{
		reportTxn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		reportTxn("Ramesh", 999, domain.MoneyOut, domain.Worker),
	}
	suite.mockSiteRepo.On("FindSiteByID", ctx, "user-1", "site-1").Return(site, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1").Return(txns, nil).Once()

	summary, err := suite.service.GetSiteSummary(ctx, "user-1", "site-1")

	suite.Require().NoError(err)
	suite.Equal("SiteA", summary.Name)
	suite.True(summary.TotalSpent.Equal(decimal.NewFromInt(500)))
	suite.True(summary.BudgetUsedPct.Equal(decimal.NewFromInt(50)))
}

func (suite *ReportingServiceTestSuite) TestGetSiteSummary_MissingSite() {
	ctx := context.Background()
	suite.mockSiteRepo.On("FindSiteByID", ctx, "user-1", "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetSiteSummary(ctx, "user-1", "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
