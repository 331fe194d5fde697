package customerrepo_test

import (
	"context"
	"testing"

	pgadapter "fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/customerrepo"
	"fleet/internal/adapters/out/postgres/pgtest"
	"fleet/internal/core/domain/model/customer"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(pgadapter.Migrate(db))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsDetails() {
	ctx := suite.T().Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Joana", "11 4000-0000", "Rua A, 10",
		kernel.MustNewNeighborhood("Centro"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.GetForUpdate(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Rename("Joana Lima"))
	loaded.ChangePhone("")
	loaded.ChangeAddress("Rua B, 20")
	suite.Require().NoError(loaded.MoveTo(kernel.MustNewNeighborhood("Jardim")))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Joana Lima", got.Name())
	suite.Empty(got.Phone())
	suite.Equal("Rua B, 20", got.Address())
	suite.Equal("Jardim", got.Neighborhood().Name())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_Missing_IsNotFound() {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Joana", "", "", kernel.MustNewNeighborhood("Centro"))
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(suite.T().Context(), c), errs.ErrObjectNotFound)
}
