package commands_test

import (
	"context"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Package, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetUnassignedMatching(ctx context.Context, filter assignment.Filter) ([]*parcel.Package, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetStartableByDriver(ctx context.Context, driverID kernel.UUID) ([]*parcel.Package, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) CountByStatus(ctx context.Context) (map[parcel.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[parcel.Status]int), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e *parcel.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) ListByPackage(ctx context.Context, packageID kernel.UUID) ([]*parcel.Event, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Event), args.Error(1)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) Add(ctx context.Context, a *parcel.DeliveryAttempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListByPackage(ctx context.Context, packageID kernel.UUID) ([]*parcel.DeliveryAttempt, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.DeliveryAttempt), args.Error(1)
}

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Add(ctx context.Context, r *assignment.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRuleRepository) Update(ctx context.Context, r *assignment.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRuleRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Rule), args.Error(1)
}

func (m *MockRuleRepository) GetAllEnabled(ctx context.Context) ([]*assignment.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Rule), args.Error(1)
}

func (m *MockRuleRepository) CountByDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	args := m.Called(ctx, driverID)
	return args.Int(0), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *assignment.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) List(ctx context.Context, limit int) ([]*assignment.Batch, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Batch), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every UoW interface in this package, so each handler test
// wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

func (m *MockUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

func (m *MockUoW) RuleRepository() ports.RuleRepository {
	args := m.Called()
	return args.Get(0).(ports.RuleRepository)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockRuleRunUoWFactory struct{ mock.Mock }

func (m *MockRuleRunUoWFactory) Create() commands.RuleRunUoW {
	args := m.Called()
	return args.Get(0).(commands.RuleRunUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}
