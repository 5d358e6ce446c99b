package packagerepo_test

import (
	"context"
	"testing"
	"time"

	"lastmile/internal/adapters/out/postgres/packagerepo"
	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/errs"

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

// PackageRepositoryIntegrationTestSuite verifies package persistence against
// a real PostgreSQL instance.
type PackageRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *packagerepo.GormPackageRepository
	tracker    *MockAggregateTracker
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&packagerepo.PackageDTO{}))
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE packages CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = packagerepo.NewGormPackageRepository(suite.db, suite.tracker)
}

func (suite *PackageRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-1001", "Doral", "33166", 5)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()

	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	loaded, err := suite.repository.Get(ctx, pkg.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(pkg.ID()))
	suite.Equal("SPX-1001", loaded.TrackingNumber())
	suite.Equal(parcel.StatusReceived, loaded.Status())
	suite.Equal(5, loaded.Priority())
	suite.Equal("Doral", loaded.Address().City())
	suite.Equal("33166", loaded.Address().Zip())
	suite.Nil(loaded.AssignedDriverID())
	suite.Equal(0, loaded.AttemptCount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_Fails() {
	ctx := context.Background()

	first := suite.newPackage("SPX-DUP", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newPackage("SPX-DUP", "Miami", "33101", 0)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(loaded)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-TRACK", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	loaded, err := suite.repository.GetByTrackingNumber(ctx, "SPX-TRACK")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(pkg.ID()))

	_, err = suite.repository.GetByTrackingNumber(ctx, "SPX-MISSING")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetByIDs_MissingID_FailsWhole() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-BULK", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	packages, err := suite.repository.GetByIDs(ctx, []kernel.UUID{pkg.ID(), kernel.NewUUID()})
	suite.Nil(packages)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-ASSIGN", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	driverID := kernel.NewUUID()
	suite.Require().NoError(pkg.Assign(driverID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, pkg))

	loaded, err := suite.repository.Get(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.AssignedDriverID())
	suite.True(loaded.AssignedDriverID().IsEqual(driverID))
	suite.NotNil(loaded.AssignedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetUnassignedMatching_FilterAndOrder() {
	ctx := context.Background()

	low := suite.newPackage("SPX-LOW", "Doral", "33166", 1)
	high := suite.newPackage("SPX-HIGH", "Doral", "33166", 9)
	otherZip := suite.newPackage("SPX-ZIP", "Doral", "33101", 9)
	assigned := suite.newPackage("SPX-TAKEN", "Doral", "33166", 9)
	suite.Require().NoError(assigned.Assign(kernel.NewUUID(), time.Now()))

	for _, pkg := range []*parcel.Package{low, high, otherZip, assigned} {
		suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
		suite.Require().NoError(suite.repository.Add(ctx, pkg))
	}

	filter, err := assignment.NewFilter("", "33166", "")
	suite.Require().NoError(err)

	candidates, err := suite.repository.GetUnassignedMatching(ctx, filter)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 2)
	suite.Equal("SPX-HIGH", candidates[0].TrackingNumber())
	suite.Equal("SPX-LOW", candidates[1].TrackingNumber())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetUnassignedMatching_CityIsCaseInsensitive() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-CITY", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	filter, err := assignment.NewFilter("", "", "DORAL")
	suite.Require().NoError(err)

	candidates, err := suite.repository.GetUnassignedMatching(ctx, filter)
	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal("SPX-CITY", candidates[0].TrackingNumber())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetStartableByDriver() {
	ctx := context.Background()
	driverID := kernel.NewUUID()

	startable := suite.newPackage("SPX-START", "Doral", "33166", 0)
	suite.Require().NoError(startable.Assign(driverID, time.Now()))

	rolling, err := parcel.RestorePackage(
		kernel.NewUUID(), "SPX-ROLLING", parcel.StatusOutForDelivery, 0,
		"Maria Perez", suite.address("Doral", "33166"), nil, nil,
		&driverID, ptrTime(time.Now()), ptrTime(time.Now()), nil, 0, nil, time.Now(),
	)
	suite.Require().NoError(err)

	for _, pkg := range []*parcel.Package{startable, rolling} {
		suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
		suite.Require().NoError(suite.repository.Add(ctx, pkg))
	}

	packages, err := suite.repository.GetStartableByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(packages, 1)
	suite.Equal("SPX-START", packages[0].TrackingNumber())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestCountByStatus() {
	ctx := context.Background()

	for _, tracking := range []string{"SPX-A", "SPX-B"} {
		pkg := suite.newPackage(tracking, "Doral", "33166", 0)
		suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
		suite.Require().NoError(suite.repository.Add(ctx, pkg))
	}

	cancelled := suite.newPackage("SPX-C", "Doral", "33166", 0)
	suite.Require().NoError(cancelled.TransitionTo(parcel.StatusCancelled, time.Now()))
	suite.tracker.On("TrackAggregate", cancelled.ID(), cancelled).Once()
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	counts, err := suite.repository.CountByStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(2, counts[parcel.StatusReceived])
	suite.Equal(1, counts[parcel.StatusCancelled])
}

func (suite *PackageRepositoryIntegrationTestSuite) TestDelete_CascadesToEventsAndAttempts() {
	ctx := context.Background()

	pkg := suite.newPackage("SPX-CASCADE", "Doral", "33166", 0)
	suite.tracker.On("TrackAggregate", pkg.ID(), pkg).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	packageID := pkg.ID().Bytes()
	suite.Require().NoError(suite.db.Exec(
		`INSERT INTO package_events (id, package_id, event_type, status_from, status_to, at_ts, notes)
		 VALUES (?, ?, 'created', '', 'received', NOW(), '')`,
		kernel.NewUUID().Bytes(), packageID,
	).Error)
	suite.Require().NoError(suite.db.Exec(
		`INSERT INTO delivery_attempts (id, package_id, driver_id, attempt_no, result, reason_code, notes, lat, lon, at_ts)
		 VALUES (?, ?, ?, 1, 'failed', 'no_access', '', 25.8103, -80.3222, NOW())`,
		kernel.NewUUID().Bytes(), packageID, kernel.NewUUID().Bytes(),
	).Error)

	suite.Require().NoError(
		suite.db.Exec("DELETE FROM packages WHERE id = ?", packageID).Error,
	)

	var events, attempts int64
	suite.Require().NoError(
		suite.db.Table("package_events").Where("package_id = ?", packageID).Count(&events).Error,
	)
	suite.Require().NoError(
		suite.db.Table("delivery_attempts").Where("package_id = ?", packageID).Count(&attempts).Error,
	)
	suite.Zero(events)
	suite.Zero(attempts)
}

func (suite *PackageRepositoryIntegrationTestSuite) newPackage(
	tracking, city, zip string,
	priority int,
) *parcel.Package {
	pkg, err := parcel.NewPackage(
		kernel.NewUUID(), tracking, "Maria Perez",
		suite.address(city, zip), priority,
		nil, nil, parcel.StatusReceived, time.Now(),
	)
	suite.Require().NoError(err)
	return pkg
}

func (suite *PackageRepositoryIntegrationTestSuite) address(city, zip string) kernel.Address {
	address, err := kernel.NewAddress("8300 NW 33rd St", city, "FL", zip)
	suite.Require().NoError(err)
	return address
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestPackageRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryIntegrationTestSuite))
}
