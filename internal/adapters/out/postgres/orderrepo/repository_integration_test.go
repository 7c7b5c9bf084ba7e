package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"replenish/internal/adapters/out/postgres/orderrepo"
	"replenish/internal/core/domain/model/kernel"
	"replenish/internal/core/domain/model/order"
	"replenish/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the conditional update guard.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryIssueDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTrips() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Number(), retrieved.Number())
	suite.Equal(order.UnderReview, retrieved.Status())
	suite.Equal(60, retrieved.TotalItems())
	suite.InDelta(2525.0, retrieved.TotalValue(), 0.001)
	suite.Len(retrieved.Items(), 2)
	suite.Nil(retrieved.ManagerID())
	suite.Equal(order.UnderReview, retrieved.LoadedStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ApprovalPersistsQuantities() {
	ctx := context.Background()
	managerID := kernel.NewUUID()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	changes, err := loaded.Approve(managerID, []order.ItemApproval{
		{SKU: "SKU-1", QtyApproved: 100},
		{SKU: "SKU-2", QtyApproved: 10},
	}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(50, changes["SKU-1"].Change)

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ConfirmPending, retrieved.Status())
	suite.Require().NotNil(retrieved.ManagerID())
	suite.True(retrieved.ManagerID().IsEqual(managerID))
	suite.Equal(110, retrieved.TotalItems())
	suite.InDelta(5025.0, retrieved.TotalValue(), 0.001)

	for _, item := range retrieved.Items() {
		suite.Require().NotNil(item.QtyApproved(), "approved quantity must persist for %s", item.SKU())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatus_LosesCleanly() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two managers load the same snapshot.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	firstManager := kernel.NewUUID()
	_, err = first.Approve(firstManager, []order.ItemApproval{{SKU: "SKU-1", QtyApproved: 60}}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	secondManager := kernel.NewUUID()
	_, err = second.Approve(secondManager, []order.ItemApproval{{SKU: "SKU-1", QtyApproved: 10}}, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrInvalidState, "the second writer must lose the conditional update")

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ManagerID().IsEqual(firstManager), "the winner's approval must survive")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveryIssuesPersist() {
	ctx := context.Background()
	deadline := time.Now().UTC().Add(8 * time.Hour).Truncate(time.Microsecond)

	received := suite.restoreReceivedOrder(deadline)
	suite.tracker.On("TrackAggregate", received.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, received))

	loaded, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)

	issue, err := order.NewDeliveryIssue("SKU-1", "three units damaged", []string{"photo-9"}, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ReportDeliveryIssues(loaded.RequesterID(), []order.DeliveryIssue{issue}))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.DeliveryIssues(), 1)
	suite.Equal("SKU-1", retrieved.DeliveryIssues()[0].SKU())
	suite.Equal("three units damaged", retrieved.DeliveryIssues()[0].Reason())
	suite.Equal(order.ConfirmOrderReceived, retrieved.Status(), "delivery issues must not move the status")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReportSurvivesConcurrentClose() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	received := suite.restoreReceivedOrder(now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, received))

	// The sweep and the requester load the same snapshot.
	sweepCopy, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)
	requesterCopy, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)

	// The report commits first. It does not change the status, so the
	// sweep's guard still matches afterwards.
	issue, err := order.NewDeliveryIssue("SKU-1", "two units missing", []string{"photo-3"}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(requesterCopy.ReportDeliveryIssues(requesterCopy.RequesterID(), []order.DeliveryIssue{issue}))
	suite.Require().NoError(suite.repository.Update(ctx, requesterCopy))

	suite.Require().NoError(sweepCopy.Close(now))
	suite.Require().NoError(suite.repository.Update(ctx, sweepCopy))

	retrieved, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ClosedOrder, retrieved.Status())
	suite.Require().Len(retrieved.DeliveryIssues(), 1, "the report must survive the close")
	suite.Equal("two units missing", retrieved.DeliveryIssues()[0].Reason())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentReportsBothPersist() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	received := suite.restoreReceivedOrder(now.Add(6 * time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, received))

	first, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)

	issueA, err := order.NewDeliveryIssue("SKU-1", "damaged packaging", nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(first.ReportDeliveryIssues(first.RequesterID(), []order.DeliveryIssue{issueA}))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	issueB, err := order.NewDeliveryIssue("SKU-1", "wrong batch", nil, now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(second.ReportDeliveryIssues(second.RequesterID(), []order.DeliveryIssue{issueB}))
	suite.Require().NoError(suite.repository.Update(ctx, second))

	retrieved, err := suite.repository.Get(ctx, received.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.DeliveryIssues(), 2, "neither report may overwrite the other")

	reasons := []string{retrieved.DeliveryIssues()[0].Reason(), retrieved.DeliveryIssues()[1].Reason()}
	suite.ElementsMatch([]string{"damaged packaging", "wrong batch"}, reasons)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindDueForAutoClose_SelectsOnlyElapsedDeadlines() {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	due := suite.restoreReceivedOrder(now.Add(-time.Hour))
	notYetDue := suite.restoreReceivedOrder(now.Add(6 * time.Hour))
	open := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, due))
	suite.Require().NoError(suite.repository.Add(ctx, notYetDue))
	suite.Require().NoError(suite.repository.Add(ctx, open))

	found, err := suite.repository.FindDueForAutoClose(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(due.ID(), found[0].ID())

	// After closing, the sweep must not pick the order up again.
	suite.Require().NoError(found[0].Close(now))
	suite.Require().NoError(suite.repository.Update(ctx, found[0]))

	foundAgain, err := suite.repository.FindDueForAutoClose(ctx, now)
	suite.Require().NoError(err)
	suite.Empty(foundAgain)
}

// createTestOrder creates an order in UnderReview with two item lines:
// 50 units at 50.0 and 10 units at 2.5.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	itemA, err := order.NewItem("SKU-1", 50, 50.0)
	suite.Require().NoError(err)
	itemB, err := order.NewItem("SKU-2", 10, 2.5)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]*order.Item{itemA, itemB}, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return testOrder
}

// restoreReceivedOrder builds an order in ConfirmOrderReceived with the given
// auto-close deadline.
func (suite *OrderRepositoryIntegrationTestSuite) restoreReceivedOrder(autoCloseAt time.Time) *order.Order {
	id := kernel.NewUUID()
	managerID := kernel.NewUUID()
	received := autoCloseAt.Add(-8 * time.Hour)
	qty := 50

	testOrder, err := order.RestoreOrder(order.RestoreArgs{
		ID:          id,
		Number:      "RO-20260302-" + id.String()[:8],
		RequesterID: kernel.NewUUID(),
		BranchID:    kernel.NewUUID(),
		ManagerID:   &managerID,
		Status:      order.ConfirmOrderReceived,
		Items:       []*order.Item{order.RestoreItem("SKU-1", 50, &qty, 50.0, 2500.0)},
		CreatedAt:   received.Add(-72 * time.Hour),
		ReceivedAt:  &received,
		AutoCloseAt: &autoCloseAt,
	})
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
