package orderrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem("i1", "Pizza", 2, 10)
	suite.Require().NoError(err)
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	suite.Require().NoError(err)
	address, err := order.NewDeliveryAddress(point, "Home")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "cust-1", "rest-1",
		[]order.Item{item}, address, nil, order.PaymentCashOnDelivery)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.AcceptBy("rider-1"))
	link := "https://track.example/abc"
	suite.Require().NoError(testOrder.ChangeStatus(order.StatusOutForDelivery, &link))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.Equal("cust-1", loaded.CustomerID())
	suite.Equal("rest-1", loaded.RestaurantID())
	suite.Require().NotNil(loaded.Rider())
	suite.Equal("rider-1", *loaded.Rider())
	suite.Equal(order.StatusOutForDelivery, loaded.Status())
	suite.Require().NotNil(loaded.TrackingLink())
	suite.Equal(link, *loaded.TrackingLink())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal("Pizza", loaded.Items()[0].Name())
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.Equal("Home", loaded.DeliveryAddress().Text())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.StatusPreparing, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPreparing, loaded.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetRider_BindsFirstClaim() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AcceptBy("rider-1"))
	suite.Require().NoError(suite.repository.CompareAndSetRider(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Rider())
	suite.Equal("rider-1", *loaded.Rider())
	suite.Equal(order.StatusAccepted, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetRider_RejectsSecondRider() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	winner, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.AcceptBy("rider-1"))
	suite.Require().NoError(suite.repository.CompareAndSetRider(ctx, winner))

	// The loser loaded the order before the winner's write landed.
	loser, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	loserView, err := order.RestoreOrder(loser.ID(), loser.CustomerID(), loser.RestaurantID(),
		loser.Items(), loser.DeliveryAddress(), loser.TotalAmount(), loser.PaymentMethod(),
		order.StatusPending, nil, nil, loser.CreatedAt(), loser.UpdatedAt())
	suite.Require().NoError(err)
	suite.Require().NoError(loserView.AcceptBy("rider-2"))

	err = suite.repository.CompareAndSetRider(ctx, loserView)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOrderAlreadyAssigned)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("rider-1", *loaded.Rider())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetRider_SameRiderIsIdempotent() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AcceptBy("rider-1"))
	suite.Require().NoError(suite.repository.CompareAndSetRider(ctx, testOrder))
	suite.Require().NoError(suite.repository.CompareAndSetRider(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("rider-1", *loaded.Rider())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetRider_UnknownOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.AcceptBy("rider-1"))

	err := suite.repository.CompareAndSetRider(context.Background(), testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetRider_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const riders = 8
	var wg sync.WaitGroup
	results := make([]error, riders)

	for i := 0; i < riders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			// Every rider claims from the same snapshot of the row.
			view, err := order.RestoreOrder(testOrder.ID(), testOrder.CustomerID(),
				testOrder.RestaurantID(), testOrder.Items(), testOrder.DeliveryAddress(),
				testOrder.TotalAmount(), testOrder.PaymentMethod(),
				order.StatusPending, nil, nil, testOrder.CreatedAt(), testOrder.UpdatedAt())
			if err != nil {
				results[i] = err
				return
			}
			if err = view.AcceptBy(fmt.Sprintf("rider-%d", i)); err != nil {
				results[i] = err
				return
			}
			results[i] = suite.repository.CompareAndSetRider(ctx, view)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, errs.ErrOrderAlreadyAssigned)
		}
	}
	suite.Equal(1, winners, "exactly one rider claim must win")

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Rider())
	suite.Equal(order.StatusAccepted, loaded.Status())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
