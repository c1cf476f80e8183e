package locationrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/locationrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rider"
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

// LocationRepositoryIntegrationTestSuite verifies upsert-by-rider
// persistence of position reports against a real PostgreSQL.
type LocationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *locationrepo.GormLocationRepository
	tracker    *MockAggregateTracker
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&locationrepo.LocationDTO{}))
}

func (suite *LocationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rider_locations").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = locationrepo.NewGormLocationRepository(suite.db, suite.tracker)
}

func (suite *LocationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LocationRepositoryIntegrationTestSuite) newLocation(riderID string, lat, lng float64) *rider.Location {
	point, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)
	orderID := kernel.NewUUID()
	l, err := rider.NewLocation(riderID, &orderID, point, 45)
	suite.Require().NoError(err)
	return l
}

func (suite *LocationRepositoryIntegrationTestSuite) TestUpsert_InsertsFirstReport() {
	ctx := context.Background()
	report := suite.newLocation("rider-1", 52.52, 13.405)

	suite.Require().NoError(suite.repository.Upsert(ctx, report))

	loaded, err := suite.repository.GetByRider(ctx, "rider-1")
	suite.Require().NoError(err)
	suite.Equal("rider-1", loaded.RiderID())
	suite.InDelta(52.52, loaded.Point().Latitude(), 1e-9)
	suite.InDelta(13.405, loaded.Point().Longitude(), 1e-9)
	suite.InDelta(45.0, loaded.Heading().Degrees(), 1e-9)
	suite.Require().NotNil(loaded.OrderID())
}

func (suite *LocationRepositoryIntegrationTestSuite) TestUpsert_ReplacesPreviousReport() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newLocation("rider-1", 52.52, 13.405)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newLocation("rider-1", 48.8566, 2.3522)))

	var count int64
	suite.Require().NoError(suite.db.Model(&locationrepo.LocationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count, "one row per rider")

	loaded, err := suite.repository.GetByRider(ctx, "rider-1")
	suite.Require().NoError(err)
	suite.InDelta(48.8566, loaded.Point().Latitude(), 1e-9)
	suite.InDelta(2.3522, loaded.Point().Longitude(), 1e-9)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestUpsert_KeepsRidersSeparate() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newLocation("rider-1", 52.52, 13.405)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newLocation("rider-2", 48.8566, 2.3522)))

	var count int64
	suite.Require().NoError(suite.db.Model(&locationrepo.LocationDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *LocationRepositoryIntegrationTestSuite) TestGetByRider_UnknownRider_ReturnsNotFound() {
	_, err := suite.repository.GetByRider(context.Background(), "rider-99")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestLocationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryIntegrationTestSuite))
}
