package kernel_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharge_SubSaturates(t *testing.T) {
	testCases := []struct {
		charge, paid, want kernel.Charge
	}{
		{200, 100, 100},
		{100, 100, 0},
		{50, 80, 0},
		{0, 1, 0},
		{7, 0, 7},
		{1, math.MaxUint64, 0},
	}

	for _, tc := range testCases {
		got := tc.charge.Sub(tc.paid)

		assert.Equal(t, tc.want, got, "%d - %d", tc.charge, tc.paid)
		assert.Equal(t, tc.charge-got, tc.charge.Paid(tc.paid))
	}
}

func TestCharge_SubMatchesMaxZeroDifference(t *testing.T) {
	for c := kernel.Charge(0); c < 40; c++ {
		for p := kernel.Charge(0); p < 40; p++ {
			want := int64(c) - int64(p)
			if want < 0 {
				want = 0
			}
			require.Equal(t, kernel.Charge(want), c.Sub(p))
		}
	}
}

func TestCharge_Exceeds(t *testing.T) {
	assert.True(t, kernel.Charge(11).Exceeds(10))
	assert.False(t, kernel.Charge(10).Exceeds(10))
	assert.False(t, kernel.Charge(0).Exceeds(10))
	assert.True(t, kernel.Charge(0).IsZero())
}

func TestDeposit(t *testing.T) {
	t.Run("converts with the fixed exchange rate", func(t *testing.T) {
		d, err := kernel.DepositFromString("1000000000000000000000000") // 100 * 10^22

		require.NoError(t, err)
		assert.Equal(t, kernel.Charge(100), d.ToCharge())
	})

	t.Run("drops the remainder below one unit", func(t *testing.T) {
		d, err := kernel.DepositFromString("19999999999999999999999")

		require.NoError(t, err)
		assert.Equal(t, kernel.Charge(1), d.ToCharge())
	})

	t.Run("clamps beyond the charge range", func(t *testing.T) {
		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(60), nil)
		d, err := kernel.NewDeposit(huge)

		require.NoError(t, err)
		assert.Equal(t, kernel.Charge(math.MaxUint64), d.ToCharge())
	})

	t.Run("DepositForCharge is the inverse of ToCharge", func(t *testing.T) {
		d := kernel.DepositForCharge(100)

		require.NoError(t, d.Validate())
		assert.Equal(t, "1000000000000000000000000", d.String())
		assert.Equal(t, kernel.Charge(100), d.ToCharge())
	})

	t.Run("rejects non-positive and malformed amounts", func(t *testing.T) {
		for _, in := range []string{"0", "-5", "", "ten", "1e22"} {
			_, err := kernel.DepositFromString(in)
			require.Error(t, err, in)
			assert.True(t, errs.IsInvalidInput(err), in)
		}

		_, err := kernel.NewDeposit(nil)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("reports non-positive amounts as out of range", func(t *testing.T) {
		for _, in := range []string{"0", "-5"} {
			_, err := kernel.DepositFromString(in)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, in)
			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr, in)
			assert.Equal(t, in, rangeErr.Value)
			assert.ErrorIs(t, rangeErr.Cause, kernel.ErrDepositIsNotPositive)
		}
	})

	t.Run("keeps its own copy of the amount", func(t *testing.T) {
		amount := big.NewInt(5)
		d, _ := kernel.NewDeposit(amount)
		amount.SetInt64(100)

		assert.Equal(t, "5", d.String())
		d.Amount().SetInt64(7)
		assert.Equal(t, "5", d.String())
	})
}
