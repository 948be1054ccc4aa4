package queries_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tracking/internal/adapters/out/postgres/historyrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the order repository's tracker dependency for seeding
// test data.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// queryHandlerSuite is the shared base for query handler integration suites.
// It provides a PostgreSQL container, a migrated schema, and seeding helpers.
type queryHandlerSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	historyRepo *historyrepo.GormStatusHistoryRepository
}

func (suite *queryHandlerSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &historyrepo.StatusChangeDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.historyRepo = historyrepo.NewGormStatusHistoryRepository(db)
}

func (suite *queryHandlerSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *queryHandlerSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder persists an order in the given status and returns it.
func (suite *queryHandlerSuite) seedOrder(status order.Status) *order.Order {
	trackingNumber, err := order.NewTrackingNumber()
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), trackingNumber, "Alice", "Bob", "Berlin", "Hamburg", status)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

// seedHistory appends a ledger entry for an order.
func (suite *queryHandlerSuite) seedHistory(
	orderID kernel.UUID,
	seq int,
	previous *order.Status,
	newStatus order.Status,
	notes string,
) {
	entry, err := order.NewStatusChange(orderID, seq, previous, newStatus, time.Now().UTC(), notes)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.historyRepo.Append(context.Background(), entry))
}

// seedFullLifecycle writes the Pending -> In Transit -> Delivered chain for an
// order and returns the order.
func (suite *queryHandlerSuite) seedFullLifecycle() *order.Order {
	testOrder := suite.seedOrder(order.Delivered)

	pending := order.Pending
	inTransit := order.InTransit
	suite.seedHistory(testOrder.ID(), 1, nil, order.Pending, "")
	suite.seedHistory(testOrder.ID(), 2, &pending, order.InTransit, "picked up")
	suite.seedHistory(testOrder.ID(), 3, &inTransit, order.Delivered, "left at door")
	return testOrder
}
