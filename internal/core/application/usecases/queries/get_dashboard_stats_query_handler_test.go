package queries_test

import (
	"context"
	"testing"
	"time"

	"tableservice/internal/adapters/out/postgres/orderrepo"
	"tableservice/internal/adapters/out/postgres/tablerepo"
	"tableservice/internal/core/application/usecases/queries"
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/domain/model/table"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DashboardQueriesTestSuite covers the dashboard snapshot and the table
// listing it draws on.
type DashboardQueriesTestSuite struct {
	suite.Suite
	container     *pgcontainer.PostgresContainer
	db            *gorm.DB
	statsHandler  queries.GetDashboardStatsQueryHandler
	tablesHandler queries.GetTablesQueryHandler
	orderRepo     *orderrepo.GormOrderRepository
	tableRepo     *tablerepo.GormTableRepository
}

func (suite *DashboardQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &tablerepo.TableDTO{}))

	suite.statsHandler = queries.NewGetDashboardStatsQueryHandler(db)
	suite.tablesHandler = queries.NewGetTablesQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
	suite.tableRepo = tablerepo.NewGormTableRepository(db)
}

func (suite *DashboardQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, tables").Error)
}

func (suite *DashboardQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DashboardQueriesTestSuite) addOrder(status order.Status, total float64, createdAt time.Time) {
	item, err := order.NewItem(kernel.NewUUID(), "Cappuccino", 1, total, "")
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), 1, []order.Item{item},
		status, total, "Carlos Silva", "", createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
}

func (suite *DashboardQueriesTestSuite) addTable(number int, status table.Status) {
	aggregate, err := table.RestoreTable(kernel.NewUUID(), number, status, 4, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.tableRepo.Add(context.Background(), aggregate))
}

func (suite *DashboardQueriesTestSuite) TestStats_EmptyDatabase() {
	stats, err := suite.statsHandler.Handle(context.Background(), queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Empty(stats.Orders)
	suite.Empty(stats.Tables)
	suite.Zero(stats.TodayRevenue)
	suite.WithinDuration(time.Now().UTC(), stats.Timestamp, time.Minute)
}

func (suite *DashboardQueriesTestSuite) TestStats_CountsByStatus() {
	now := time.Now().UTC()
	suite.addOrder(order.Pending, 5.00, now)
	suite.addOrder(order.Pending, 6.00, now)
	suite.addOrder(order.Delivered, 10.00, now)
	suite.addTable(1, table.Available)
	suite.addTable(2, table.Occupied)
	suite.addTable(3, table.Occupied)

	stats, err := suite.statsHandler.Handle(context.Background(), queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(2, stats.Orders["pending"])
	suite.Equal(1, stats.Orders["delivered"])
	suite.Equal(1, stats.Tables["available"])
	suite.Equal(2, stats.Tables["occupied"])
}

func (suite *DashboardQueriesTestSuite) TestStats_RevenueCountsDeliveredFromTodayOnly() {
	now := time.Now().UTC()
	yesterday := now.Add(-26 * time.Hour)

	suite.addOrder(order.Delivered, 10.00, now)
	suite.addOrder(order.Delivered, 99.00, yesterday)
	suite.addOrder(order.Pending, 50.00, now)
	suite.addOrder(order.Cancelled, 25.00, now)

	stats, err := suite.statsHandler.Handle(context.Background(), queries.NewGetDashboardStatsQuery())

	suite.Require().NoError(err)
	suite.InDelta(10.00, stats.TodayRevenue, 0.001)
}

func (suite *DashboardQueriesTestSuite) TestGetTables_OrderedByNumber() {
	suite.addTable(3, table.Reserved)
	suite.addTable(1, table.Available)
	suite.addTable(2, table.Occupied)

	result, err := suite.tablesHandler.Handle(context.Background(), queries.NewGetTablesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(1, result[0].Number)
	suite.Equal("available", result[0].Status)
	suite.Equal(2, result[1].Number)
	suite.Equal("occupied", result[1].Status)
	suite.Equal(3, result[2].Number)
	suite.Equal("reserved", result[2].Status)
	suite.Equal(4, result[0].Capacity)
	suite.Zero(result[0].CurrentCustomers)
}

func (suite *DashboardQueriesTestSuite) TestStats_InvalidQuery_ReturnsError() {
	_, err := suite.statsHandler.Handle(context.Background(), queries.GetDashboardStatsQuery{})
	suite.Require().Error(err)
}

func TestDashboardQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardQueriesTestSuite))
}
