package services_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/tracker"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParcel(t *testing.T, charge kernel.Charge) *parcel.Parcel {
	t.Helper()
	id, err := kernel.NewParcelID(1)
	require.NoError(t, err)
	sender, err := parcel.NewContact("sender", "joe", 123)
	require.NoError(t, err)
	receiver, err := parcel.NewContact("receiver", "doe", 456)
	require.NoError(t, err)
	p, err := parcel.NewParcel(id, sender, receiver, charge, "juja", true, "2022-06-10")
	require.NoError(t, err)
	return p
}

func TestPaymentProcessor_Pay(t *testing.T) {
	processor := services.NewPaymentProcessor()
	now := time.Now()

	t.Run("should convert deposit at exchange rate", func(t *testing.T) {
		p := newParcel(t, 200)

		outcome, entry, err := processor.Pay(p, kernel.DepositForCharge(50), now)

		require.NoError(t, err)
		assert.Equal(t, kernel.Charge(150), outcome.Remaining)
		assert.Equal(t, kernel.Charge(50), outcome.Applied)
		assert.False(t, outcome.ReadyForDispatch())
		assert.Equal(t, kernel.Charge(150), p.DeliveryCharge())
		require.NotNil(t, entry)
		assert.True(t, entry.ParcelID().IsEqual(p.ID()))
		assert.Equal(t, kernel.Charge(150), entry.Remaining())
	})

	t.Run("should drop remainder below one charge unit", func(t *testing.T) {
		p := newParcel(t, 200)
		almostTwo := new(big.Int).Sub(kernel.DepositForCharge(2).Amount(), big.NewInt(1))
		deposit, err := kernel.NewDeposit(almostTwo)
		require.NoError(t, err)

		outcome, _, err := processor.Pay(p, deposit, now)

		require.NoError(t, err)
		assert.Equal(t, kernel.Charge(199), outcome.Remaining)
	})

	t.Run("should clamp overpayment", func(t *testing.T) {
		p := newParcel(t, 200)

		outcome, entry, err := processor.Pay(p, kernel.DepositForCharge(300), now)

		require.NoError(t, err)
		assert.True(t, outcome.ReadyForDispatch())
		assert.Equal(t, kernel.Charge(200), entry.Applied())
		assert.Equal(t, parcel.Paid, p.Status())
	})

	t.Run("should reject unconstructed deposit", func(t *testing.T) {
		p := newParcel(t, 200)
		var deposit kernel.Deposit

		_, _, err := processor.Pay(p, deposit, now)

		require.ErrorIs(t, err, kernel.ErrDepositIsNotConstructed)
		assert.Equal(t, kernel.Charge(200), p.DeliveryCharge())
	})
}

func TestDispatchGate_Dispatch(t *testing.T) {
	gate := services.NewDispatchGate(services.DefaultDispatchThreshold)

	t.Run("should dispatch within threshold", func(t *testing.T) {
		p := newParcel(t, 10)

		tr, err := gate.Dispatch(p, nil, "nairobi")

		require.NoError(t, err)
		assert.Equal(t, parcel.Dispatched, p.Status())
		assert.True(t, tr.ParcelID().IsEqual(p.ID()))
		assert.Equal(t, "nairobi", tr.CurrentLocation())
		assert.False(t, tr.HasArrived())
	})

	t.Run("should refuse above threshold", func(t *testing.T) {
		p := newParcel(t, 11)

		tr, err := gate.Dispatch(p, nil, "nairobi")

		require.ErrorIs(t, err, parcel.ErrPaymentPending)
		assert.Nil(t, tr)
		assert.Equal(t, parcel.Registered, p.Status())
		assert.False(t, gate.CanDispatch(p))
	})

	t.Run("should never overwrite existing tracker", func(t *testing.T) {
		p := newParcel(t, 5)
		existing, err := tracker.NewTracker(p.ID(), "nairobi")
		require.NoError(t, err)

		tr, err := gate.Dispatch(p, existing, "mombasa")

		require.ErrorIs(t, err, parcel.ErrAlreadyDispatched)
		assert.Nil(t, tr)
		assert.Equal(t, "nairobi", existing.CurrentLocation())
	})

	t.Run("should leave parcel untouched on blank location", func(t *testing.T) {
		p := newParcel(t, 5)

		_, err := gate.Dispatch(p, nil, "")

		require.Error(t, err)
		assert.Equal(t, parcel.Registered, p.Status())
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		p := newParcel(t, 50)
		lenient := services.NewDispatchGate(100)

		assert.True(t, lenient.CanDispatch(p))
		assert.Equal(t, kernel.Charge(100), lenient.Threshold())
	})
}

func TestTrackingAuthorizer_Authorize(t *testing.T) {
	authorizer := services.NewTrackingAuthorizer()
	sender, err := kernel.NewPhone(123)
	require.NoError(t, err)
	other, err := kernel.NewPhone(999)
	require.NoError(t, err)

	require.NoError(t, authorizer.Authorize(sender, sender))
	require.ErrorIs(t, authorizer.Authorize(sender, other), services.ErrUnauthorized)

	var unset kernel.Phone
	assert.ErrorIs(t, authorizer.Authorize(unset, unset), services.ErrUnauthorized)
}
