package queries_test

import (
	"context"
	"testing"
	"time"

	"tableservice/internal/adapters/out/postgres/orderrepo"
	"tableservice/internal/core/application/usecases/queries"
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderQueriesTestSuite covers the order history and the active-orders
// queue, which share the row-to-response mapping.
type OrderQueriesTestSuite struct {
	suite.Suite
	container      *pgcontainer.PostgresContainer
	db             *gorm.DB
	historyHandler queries.GetOrdersQueryHandler
	activeHandler  queries.GetActiveOrdersQueryHandler
	repo           *orderrepo.GormOrderRepository
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.historyHandler = queries.NewGetOrdersQueryHandler(db)
	suite.activeHandler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// addOrder stores an order with a controlled creation time and status.
func (suite *OrderQueriesTestSuite) addOrder(status order.Status, createdAt time.Time, waiter string) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Cappuccino", 2, 5.00, "")
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), 5, []order.Item{item},
		status, 10.00, waiter, "", createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrders_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.historyHandler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_NewestFirst() {
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	suite.addOrder(order.Pending, base, "first")
	suite.addOrder(order.Delivered, base.Add(10*time.Minute), "second")
	suite.addOrder(order.Cancelled, base.Add(20*time.Minute), "third")

	result, err := suite.historyHandler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("third", result[0].WaiterName)
	suite.Equal("second", result[1].WaiterName)
	suite.Equal("first", result[2].WaiterName)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_MapsFullShape() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	added := suite.addOrder(order.Preparing, base, "Carlos Silva")

	result, err := suite.historyHandler.Handle(context.Background(), queries.NewGetOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.Equal(added.ID().String(), resp.ID)
	suite.Equal(5, resp.TableNumber)
	suite.Equal("preparing", resp.Status)
	suite.InDelta(10.00, resp.TotalAmount, 0.001)
	suite.Equal("Carlos Silva", resp.WaiterName)
	suite.Nil(resp.SpecialRequests)

	suite.Require().Len(resp.Items, 1)
	suite.Equal("Cappuccino", resp.Items[0].MenuItemName)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.InDelta(5.00, resp.Items[0].Price, 0.001)
}

func (suite *OrderQueriesTestSuite) TestGetActiveOrders_FiltersAndSortsOldestFirst() {
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	suite.addOrder(order.Ready, base.Add(10*time.Minute), "later")
	suite.addOrder(order.Pending, base, "earlier")
	suite.addOrder(order.Delivered, base.Add(5*time.Minute), "done")
	suite.addOrder(order.Cancelled, base.Add(6*time.Minute), "gone")

	result, err := suite.activeHandler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("earlier", result[0].WaiterName)
	suite.Equal("later", result[1].WaiterName)
}

func (suite *OrderQueriesTestSuite) TestGetOrders_InvalidQuery_ReturnsError() {
	result, err := suite.historyHandler.Handle(context.Background(), queries.GetOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *OrderQueriesTestSuite) TestGetActiveOrders_InvalidQuery_ReturnsError() {
	result, err := suite.activeHandler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
