package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedProduct(t *testing.T, price, weight float64) *product.Product {
	t.Helper()

	listing, err := product.RestoreProduct(
		kernel.NewUUID(), "Lamp", "", weight, price, "home",
		product.StatusApproved, kernel.NewUUID())
	require.NoError(t, err)

	return listing
}

func TestAddToBasketCommandHandler_Handle_CreatesBasketOnFirstUse(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	listing := approvedProduct(t, 30, 1.2)
	cmd, _ := commands.NewAddToBasketCommand(customerID, listing.ID())

	productRepo := new(MockProductRepository)
	basketRepo := new(MockBasketRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once()
	uow.On("BasketRepository").Return(basketRepo).Once()
	basketRepo.On("GetByCustomer", mock.Anything, customerID).
		Return(nil, errs.NewObjectNotFoundError("customerId", customerID.String())).Once()
	basketRepo.On("Add", mock.Anything, mock.AnythingOfType("*basket.Basket")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBasketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToBasketCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	basketRepo.AssertNotCalled(t, "Update")

	saved := basketRepo.Calls[len(basketRepo.Calls)-1].Arguments.Get(1).(*basket.Basket)
	assert.True(t, saved.Contains(listing.ID()))
	assert.InDelta(t, 30.0, saved.Price(), 0.0001)
}

func TestAddToBasketCommandHandler_Handle_UpdatesExistingBasket(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	listing := approvedProduct(t, 15, 0.5)
	cmd, _ := commands.NewAddToBasketCommand(customerID, listing.ID())

	existing, err := basket.NewBasket(kernel.NewUUID(), customerID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	basketRepo := new(MockBasketRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once()
	uow.On("BasketRepository").Return(basketRepo).Once()
	basketRepo.On("GetByCustomer", mock.Anything, customerID).Return(existing, nil).Once()
	basketRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBasketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToBasketCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, existing.Contains(listing.ID()))
	basketRepo.AssertNotCalled(t, "Add")
}

func TestAddToBasketCommandHandler_Handle_UnapprovedProductIsNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	pending, err := product.NewProduct(kernel.NewUUID(), "Lamp", "", 1.2, 30, "home", kernel.NewUUID())
	require.NoError(t, err)

	cmd, _ := commands.NewAddToBasketCommand(customerID, pending.ID())

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBasketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToBasketCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "BasketRepository")
	uow.AssertNotCalled(t, "Commit")
}
