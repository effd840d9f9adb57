package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveProductCommandHandler_Handle_Approves(t *testing.T) {
	ctx := t.Context()
	admin, err := account.NewAdmin(
		kernel.NewUUID(), "Root", "root@example.com", "secret", "active")
	require.NoError(t, err)

	listing, err := product.NewProduct(
		kernel.NewUUID(), "Pizza", "stone oven", 0.5, 12.50, "food", kernel.NewUUID())
	require.NoError(t, err)

	cmd, _ := commands.NewApproveProductCommand(listing.ID(), admin.ID(), product.StatusApproved)

	accountRepo := new(MockAccountRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("GetAdmin", mock.Anything, admin.ID()).Return(admin, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once(),
		productRepo.On("Update", mock.Anything, listing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, product.StatusApproved, listing.Status())
	assert.True(t, listing.IsAvailable())
	uow.AssertExpectations(t)
}

func TestApproveProductCommandHandler_Handle_Rejects(t *testing.T) {
	ctx := t.Context()
	admin, err := account.NewAdmin(
		kernel.NewUUID(), "Root", "root@example.com", "secret", "active")
	require.NoError(t, err)

	listing, err := product.NewProduct(
		kernel.NewUUID(), "Pizza", "stone oven", 0.5, 12.50, "food", kernel.NewUUID())
	require.NoError(t, err)

	cmd, _ := commands.NewApproveProductCommand(listing.ID(), admin.ID(), product.StatusRejected)

	accountRepo := new(MockAccountRepository)
	accountRepo.On("GetAdmin", mock.Anything, admin.ID()).Return(admin, nil).Once()

	productRepo := new(MockProductRepository)
	productRepo.On("Get", mock.Anything, listing.ID()).Return(listing, nil).Once()
	productRepo.On("Update", mock.Anything, listing).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, product.StatusRejected, listing.Status())
	assert.False(t, listing.IsAvailable())
}

func TestApproveProductCommandHandler_Handle_ForbiddenForNonAdmin(t *testing.T) {
	ctx := t.Context()
	strangerID := kernel.NewUUID()
	cmd, _ := commands.NewApproveProductCommand(kernel.NewUUID(), strangerID, product.StatusApproved)

	accountRepo := new(MockAccountRepository)
	accountRepo.On("GetAdmin", mock.Anything, strangerID).
		Return(nil, errs.NewObjectNotFoundError("adminId", strangerID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectForbidden)
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertNotCalled(t, "Commit")
}
