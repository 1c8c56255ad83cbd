package parcel

import (
	"errors"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrContactIsNotConstructed = errs.NewValueIsRequiredError("contact must be created via NewContact")

// Contact is a named party to a shipment, reachable by phone.
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	phone kernel.Phone
	guard guard.ConstructorGuard
}

// NewContact validates the name (non-blank) and phone. role names the party
// in error messages ("sender", "receiver").
func NewContact(role, name string, phone uint64) (Contact, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError(role + " name")
	}

	p, phoneErr := kernel.NewPhone(phone)
	if phoneErr != nil {
		phoneErr = errs.NewValueIsRequiredErrorWithCause(role+" phone", phoneErr)
	}

	if err := errors.Join(nameErr, phoneErr); err != nil {
		return Contact{}, err
	}

	return Contact{name: name, phone: p, guard: guard.NewConstructorGuard()}, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Phone() kernel.Phone {
	return c.phone
}
