package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

// NativeUnitsPerCharge is the fixed exchange rate: 10^22 native smallest
// units buy one delivery charge unit.
const NativeUnitsPerCharge = "10000000000000000000000"

var (
	nativeUnitsPerCharge = mustBigInt(NativeUnitsPerCharge)
	maxCharge            = new(big.Int).SetUint64(math.MaxUint64)

	ErrDepositIsNotConstructed = errs.NewValueIsRequiredError("deposit must be created via NewDeposit or DepositFromString")
	// ErrDepositIsNotPositive is the cause attached to the range error for a zero or negative amount.
	ErrDepositIsNotPositive = errors.New("deposit must buy something")
)

// Deposit is a payment attached to a call, in native smallest units. The
// amounts exceed 64 bits, so it is held as an arbitrary precision integer
// and never mutated after construction.
type Deposit struct { //nolint:recvcheck //using for validation
	amount *big.Int
	guard  guard.ConstructorGuard
}

// NewDeposit copies amount, which must be positive.
func NewDeposit(amount *big.Int) (Deposit, error) {
	if amount == nil {
		return Deposit{}, errs.NewValueIsRequiredError("deposit")
	}
	if amount.Sign() <= 0 {
		return Deposit{}, errs.NewValueIsOutOfRangeErrorWithCause("deposit", amount.String(), 1, "unbounded",
			ErrDepositIsNotPositive)
	}
	return Deposit{amount: new(big.Int).Set(amount), guard: guard.NewConstructorGuard()}, nil
}

// DepositFromString parses a base-10 amount of native units.
func DepositFromString(s string) (Deposit, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Deposit{}, errs.NewValueIsInvalidErrorWithCause("deposit", fmt.Errorf("%q is not a base-10 integer", s))
	}
	return NewDeposit(amount)
}

// DepositForCharge returns the deposit that converts to exactly units.
func DepositForCharge(units Charge) Deposit {
	amount := new(big.Int).Mul(new(big.Int).SetUint64(units.Uint64()), nativeUnitsPerCharge)
	return Deposit{amount: amount, guard: guard.NewConstructorGuard()}
}

func (d Deposit) Validate() error {
	return d.guard.Validate(ErrDepositIsNotConstructed)
}

// Amount returns a copy of the native amount.
func (d Deposit) Amount() *big.Int {
	if d.amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(d.amount)
}

func (d Deposit) String() string {
	if d.amount == nil {
		return "0"
	}
	return d.amount.String()
}

// ToCharge converts the deposit into whole charge units. The remainder below
// one unit is dropped; amounts beyond the Charge range clamp to its maximum.
func (d Deposit) ToCharge() Charge {
	if d.amount == nil {
		return 0
	}
	units := new(big.Int).Quo(d.amount, nativeUnitsPerCharge)
	if units.Cmp(maxCharge) > 0 {
		return Charge(math.MaxUint64)
	}
	return Charge(units.Uint64())
}

func mustBigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("kernel: invalid big integer constant " + s)
	}
	return v
}
