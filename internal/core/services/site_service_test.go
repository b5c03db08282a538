package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/core/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SiteServiceTestSuite struct {
	suite.Suite
	mockSiteRepo *MockSiteRepository
	service      portssvc.SiteSvcFacade
}

func (suite *SiteServiceTestSuite) SetupTest() {
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewSiteService(suite.mockSiteRepo)
}

func (suite *SiteServiceTestSuite) TestCreateSite_Success() {
	ctx := context.Background()
	suite.mockSiteRepo.On("SaveSite", ctx, mock.MatchedBy(func(site domain.Site) bool {
		return site.Name == "SiteA" && site.OwnerID == "user-1" && site.Budget.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	site, err := suite.service.CreateSite(ctx, "user-1", dto.CreateSiteRequest{
		Name:   "  SiteA  ",
		Budget: decimal.NewFromInt(1000),
	})

	suite.Require().NoError(err)
	suite.Equal("SiteA", site.Name)
	suite.NotEmpty(site.SiteID)
	suite.mockSiteRepo.AssertExpectations(suite.T())
}

func (suite *SiteServiceTestSuite) TestCreateSite_RejectsZeroBudget() {
	ctx := context.Background()

	_, err := suite.service.CreateSite(ctx, "user-1", dto.CreateSiteRequest{
		Name:   "SiteA",
		Budget: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "SaveSite")
}

func (suite *SiteServiceTestSuite) TestCreateSite_RejectsNegativeBudget() {
	ctx := context.Background()

	_, err := suite.service.CreateSite(ctx, "user-1", dto.CreateSiteRequest{
		Name:   "SiteA",
		Budget: decimal.NewFromInt(-500),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SiteServiceTestSuite) TestCreateSite_RejectsReservedName() {
	ctx := context.Background()

	_, err := suite.service.CreateSite(ctx, "user-1", dto.CreateSiteRequest{
		Name:   domain.UncategorizedLabel,
		Budget: decimal.NewFromInt(1000),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SiteServiceTestSuite) TestDeleteSite_OnlyTouchesSiteRow() {
	ctx := context.Background()
	suite.mockSiteRepo.On("DeleteSite", ctx, "user-1", "site-1").Return(nil).Once()

	err := suite.service.DeleteSite(ctx, "user-1", "site-1")

	suite.Require().NoError(err)
	// No other repository interaction happens: transactions referencing the
	// site by name are never rewritten.
	suite.mockSiteRepo.AssertExpectations(suite.T())
}

func TestSiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}
