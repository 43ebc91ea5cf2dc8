package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/staff"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var boardNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type uowFactoryFunc func() commands.UoW

type handlerUoWFactoryFunc func() commands.HandlerUoW

func (f handlerUoWFactoryFunc) Create() commands.HandlerUoW {
	return f()
}

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, handlers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.HandlerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.LockBoard(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	h := suite.newHandler("German Gomez", 15, 6)
	o := suite.newOrder(1, nil)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.HandlerRepository().Add(ctx, h))
	suite.Require().NoError(uow.OrderRepository().Replace(ctx, []*order.Order{o}))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount("orders", 1)
	suite.assertCount("handlers", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.HandlerRepository().Add(ctx, suite.newHandler("German Gomez", 15, 6)))
	suite.Require().NoError(uow.OrderRepository().Replace(ctx, []*order.Order{suite.newOrder(1, nil)}))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount("orders", 0)
	suite.assertCount("handlers", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.HandlerRepository().Add(ctx, suite.newHandler("German Gomez", 15, 6)))

	suite.assertCount("handlers", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_LockBoardSerializesWriters() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.LockBoard(ctx))

	acquired := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			acquired <- err
			return
		}
		defer func() { _ = second.Rollback(ctx) }()
		acquired <- second.LockBoard(ctx)
	}()

	select {
	case <-acquired:
		suite.Fail("second writer took the board lock while the first one held it")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))

	select {
	case err := <-acquired:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("second writer never took the board lock")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreateHandler_ConcurrentCallsGetDistinctRanks() {
	ctx := context.Background()
	handler := commands.NewCreateHandlerCommandHandler(handlerUoWFactoryFunc(func() commands.HandlerUoW {
		return suite.factory.Create()
	}))

	const writers = 8
	results := make(chan error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewCreateHandlerCommand(kernel.NewUUID(), fmt.Sprintf("Handler %d", i), "Operations", 10, 0)
			if err != nil {
				results <- err
				return
			}
			results <- handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		suite.Require().NoError(err)
	}

	var distinct int64
	suite.Require().NoError(suite.db.Raw("SELECT COUNT(DISTINCT roster_rank) FROM handlers").Scan(&distinct).Error)
	suite.Equal(int64(writers), distinct)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SeedAndAssignWorkflow() {
	ctx := context.Background()
	factory := uowFactoryFunc(func() commands.UoW { return suite.factory.Create() })
	clock := func() time.Time { return boardNow }

	german := suite.newHandler("German Gomez", 15, 6)
	valeria := suite.newHandler("Valeria Elizondo", 10, 8)
	seedUoW := suite.factory.Create()
	suite.Require().NoError(seedUoW.HandlerRepository().Add(ctx, german))
	suite.Require().NoError(seedUoW.HandlerRepository().Add(ctx, valeria))

	seed, err := commands.NewSeedOrdersCommand([]commands.SeedOrder{
		{ID: "ORD-0001", Product: "Tundra Eau de Parfum", Zone: kernel.ZoneNorte, CreatedAt: boardNow, Quantity: 1},
		{ID: "ORD-0002", Product: "Set LeBoret No. 1", Zone: kernel.ZoneSur, CreatedAt: boardNow.AddDate(0, 0, -3), Quantity: 2},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(commands.NewSeedOrdersCommandHandler(factory, clock).Handle(ctx, seed))

	stored, err := suite.factory.Create().OrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.Equal("ORD-0002", stored[0].ID().String(), "higher score comes first")

	assignCmd, err := commands.NewAssignOrderCommand(stored[0].ID())
	suite.Require().NoError(err)
	result, err := commands.NewAssignOrderCommandHandler(factory).Handle(ctx, assignCmd)
	suite.Require().NoError(err)

	suite.Equal("German Gomez", result.HandlerName)

	reloaded, err := suite.factory.Create().HandlerRepository().Get(ctx, german.ID())
	suite.Require().NoError(err)
	suite.Equal(7, reloaded.AssignedCount())

	assigned, err := suite.factory.Create().OrderRepository().Get(ctx, stored[0].ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(assigned.Handler())
	suite.Equal(german.ID(), *assigned.Handler())
}

func (suite *UnitOfWorkIntegrationTestSuite) newHandler(name string, capacity, assigned int) *staff.Handler {
	h, err := staff.NewHandler(kernel.NewUUID(), name, "Operations", capacity, assigned)
	suite.Require().NoError(err)
	return h
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(seq int, handlerID *kernel.UUID) *order.Order {
	id, err := kernel.NewOrderID(seq)
	suite.Require().NoError(err)
	product, err := kernel.NewProduct("Tundra Eau de Parfum")
	suite.Require().NoError(err)
	zone, err := kernel.NewZone(kernel.ZoneCentro)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(id, product, zone, boardNow, 1, order.Pending, handlerID, 0)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
