package registry

import (
	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/queries"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
)

// The handlers each declare the narrow unit of work they need; these
// adapters hand them the full ports.UnitOfWork.

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}

func registrationFactory(f ports.UnitOfWorkFactory) commands.RegistrationUoWFactory {
	return FuncRegistrationUoWFactory(func() commands.RegistrationUoW { return f.Create() })
}

func paymentFactory(f ports.UnitOfWorkFactory) commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW { return f.Create() })
}

func dispatchFactory(f ports.UnitOfWorkFactory) commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW { return f.Create() })
}

func readFactory(f ports.UnitOfWorkFactory) queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW { return f.Create() })
}
