package kernel

import (
	"strconv"

	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone is a numeric phone number. The sender's phone doubles as the
// credential a tracking query has to present.
type Phone struct { //nolint:recvcheck //using for validation
	number uint64
	guard  guard.ConstructorGuard
}

func NewPhone(number uint64) (Phone, error) {
	if number == 0 {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	return Phone{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

func (p Phone) Uint64() uint64 {
	return p.number
}

func (p Phone) String() string {
	return strconv.FormatUint(p.number, 10)
}

// IsEqual compares numbers only; two zero values are never equal, so an
// unset credential cannot match anything.
func (p Phone) IsEqual(other Phone) bool {
	return p.Validate() == nil && other.Validate() == nil && p.number == other.number
}
