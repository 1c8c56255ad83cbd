package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/payment"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllAwaitingDispatch(
	ctx context.Context,
	maxCharge kernel.Charge,
	limit int,
) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, maxCharge, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockTrackerRepository struct{ mock.Mock }

func (m *MockTrackerRepository) Add(ctx context.Context, t *tracker.Tracker) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackerRepository) Update(ctx context.Context, t *tracker.Tracker) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackerRepository) Get(ctx context.Context, id kernel.ParcelID) (*tracker.Tracker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracker.Tracker), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetAllByParcel(ctx context.Context, id kernel.ParcelID) ([]*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockAllocator struct{ mock.Mock }

func (m *MockAllocator) Next(ctx context.Context) (kernel.ParcelID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ParcelID), args.Error(1)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, id kernel.ParcelID) (ports.TrackingEntry, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.TrackingEntry), args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Set(ctx context.Context, entry ports.TrackingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTrackingCache) Delete(ctx context.Context, id kernel.ParcelID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnitOfWork satisfies every UoW flavour the handlers ask for.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUnitOfWork) TrackerRepository() ports.TrackerRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackerRepository)
}

func (m *MockUnitOfWork) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUnitOfWork) IdentifierAllocator() ports.IdentifierAllocator {
	args := m.Called()
	return args.Get(0).(ports.IdentifierAllocator)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustParcelID(t *testing.T, v uint64) kernel.ParcelID {
	t.Helper()
	id, err := kernel.NewParcelID(v)
	require.NoError(t, err)
	return id
}

func newParcel(t *testing.T, id uint64, charge kernel.Charge) *parcel.Parcel {
	t.Helper()
	sender, err := parcel.NewContact("sender", "joe", 123)
	require.NoError(t, err)
	receiver, err := parcel.NewContact("receiver", "doe", 456)
	require.NoError(t, err)
	p, err := parcel.NewParcel(mustParcelID(t, id), sender, receiver, charge, "juja", true, "2022-06-10")
	require.NoError(t, err)
	return p
}

func validDetails() commands.ParcelDetails {
	return commands.ParcelDetails{
		SenderName:     "joe",
		SenderPhone:    123,
		ReceiverName:   "doe",
		ReceiverPhone:  456,
		DeliveryCharge: 200,
		Destination:    "juja",
		IsFragile:      true,
		DateSent:       "2022-06-10",
	}
}
