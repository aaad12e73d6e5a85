package postgres_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/principalrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work gives each
// command transactional repositories: changes become visible only on commit
// and disappear on rollback.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&principalrepo.PrincipalDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, principals, restaurants").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	price, err := kernel.NewMoney(900)
	suite.Require().NoError(err)
	item, err := order.NewItem("pizza-margherita", "Margherita", price, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_ProducesIsolatedInstances() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotNil(first)
	suite.NotNil(second)
	suite.NotSame(first, second)
	suite.NotNil(first.OrderRepository())
	suite.NotNil(first.PrincipalRepository())
	suite.NotNil(first.RestaurantRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutTransactionFails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutTransactionFails() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	testOrder := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work must see the committed order.
	other := suite.factory.Create()
	restored, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	testOrder := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	other := suite.factory.Create()
	_, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChangesAreInvisible() {
	ctx := context.Background()
	testOrder := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Another unit of work must not see the uncommitted row.
	other := suite.factory.Create()
	_, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryWithoutTransactionWritesDirectly() {
	ctx := context.Background()
	testOrder := suite.newOrder()

	// Repositories obtained before Begin run on the plain connection.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	other := suite.factory.Create()
	restored, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentWorkflows_SecondWriterLoses() {
	ctx := context.Background()
	testOrder := suite.newOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	// Two workflows load the same pending order.
	firstUow := suite.factory.Create()
	first, err := firstUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	secondUow := suite.factory.Create()
	second, err := secondUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First workflow moves the order into preparation and commits.
	suite.Require().NoError(firstUow.Begin(ctx))
	suite.Require().NoError(first.Advance(order.Making))
	suite.Require().NoError(firstUow.OrderRepository().Update(ctx, first))
	suite.Require().NoError(firstUow.Commit(ctx))

	// Second workflow decided against a status that no longer holds.
	suite.Require().NoError(secondUow.Begin(ctx))
	suite.Require().NoError(second.Cancel())
	err = secondUow.OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrStaleState)
	suite.Require().NoError(secondUow.Rollback(ctx))

	check := suite.factory.Create()
	restored, err := check.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Making, restored.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
