package commands_test

import (
	"errors"
	"testing"

	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/parcel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(validDetails())
	require.NoError(t, err)
	id := mustParcelID(t, 1)

	allocator := new(MockAllocator)
	repo := new(MockParcelRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierAllocator").Return(allocator).Once(),
		allocator.On("Next", ctx).Return(id, nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
			return p.ID().IsEqual(id) && p.Status() == parcel.Registered && p.DeliveryCharge() == 200
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, got.IsEqual(id))
	allocator.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRegistrationUoWFactory)
	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())

	_, err := h.Handle(t.Context(), commands.RegisterParcelCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterParcelCommandHandler_Handle_InvalidParcelRollsBack(t *testing.T) {
	ctx := t.Context()
	details := validDetails()
	details.DeliveryCharge = 0
	details.Destination = " "
	cmd, err := commands.NewRegisterParcelCommand(details)
	require.NoError(t, err)

	allocator := new(MockAllocator)
	repo := new(MockParcelRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierAllocator").Return(allocator).Once(),
		allocator.On("Next", ctx).Return(mustParcelID(t, 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsInvalidInput(err))
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "delivery charge")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(validDetails())
	require.NoError(t, err)

	allocator := new(MockAllocator)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierAllocator").Return(allocator).Once(),
		allocator.On("Next", ctx).Return(mustParcelID(t, 1), errors.New("sequence unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(validDetails())
	require.NoError(t, err)

	allocator := new(MockAllocator)
	repo := new(MockParcelRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierAllocator").Return(allocator).Once(),
		allocator.On("Next", ctx).Return(mustParcelID(t, 1), nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterParcelCommand(validDetails())
	require.NoError(t, err)

	allocator := new(MockAllocator)
	repo := new(MockParcelRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierAllocator").Return(allocator).Once(),
		allocator.On("Next", ctx).Return(mustParcelID(t, 1), nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterParcelCommandHandler(factory, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
