package offeringrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres/offeringrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OfferingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *offeringrepo.GormOfferingRepository
}

func (suite *OfferingRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *OfferingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OfferingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repo = offeringrepo.NewGormOfferingRepository(suite.db, pgtest.NopTracker{}, pgtest.Amounts())
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	// Given
	ctx := context.Background()
	title, _ := kernel.NewTitle("Plumbing")
	description, _ := kernel.NewDescription("Fixing leaks and pipes")
	price, _ := kernel.NewMoney(80.255)
	o, err := catalog.NewOffering(kernel.NewUUID(), kernel.NewUUID(), title, description, price)
	suite.Require().NoError(err)

	// When
	err = suite.repo.Add(ctx, o)

	// Then
	suite.Require().NoError(err)
	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("Plumbing", loaded.Title().String())
	suite.Equal("Fixing leaks and pipes", loaded.Description().String())
	suite.Equal("80.26", loaded.Price().String())
	suite.True(loaded.IsActive())
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestUpdate_Deactivates() {
	// Given
	ctx := context.Background()
	o, err := pgtest.SeedOffering(ctx, suite.db, kernel.NewUUID())
	suite.Require().NoError(err)
	o.Deactivate()

	// When
	err = suite.repo.Update(ctx, o)

	// Then
	suite.Require().NoError(err)
	loaded, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(catalog.Inactive, loaded.Status())
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOfferingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfferingRepositoryIntegrationTestSuite))
}
