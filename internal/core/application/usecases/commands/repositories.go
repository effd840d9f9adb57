// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// BasketRepoFactory provides access to the basket repository within a transaction.
	BasketRepoFactory interface {
		BasketRepository() ports.BasketRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// SignUpUoW manages transactions for registration, which touches the
	// account stores and, for customers, creates the basket.
	SignUpUoW interface {
		TxManager
		AccountRepoFactory
		BasketRepoFactory
	}

	// SignUpUoWFactory creates new sign-up unit of work instances.
	SignUpUoWFactory interface {
		Create() SignUpUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CatalogUoW manages transactions for catalog operations that also need
	// to resolve the acting account, e.g. publishing or approving a product.
	CatalogUoW interface {
		TxManager
		AccountRepoFactory
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// BasketUoW manages transactions for basket operations. Product access
	// is needed to resolve the member being added.
	BasketUoW interface {
		TxManager
		BasketRepoFactory
		ProductRepoFactory
	}

	// BasketUoWFactory creates new basket unit of work instances.
	BasketUoWFactory interface {
		Create() BasketUoW
	}

	// CheckoutUoW manages the basket-to-order conversion, which mutates
	// both aggregates atomically.
	CheckoutUoW interface {
		TxManager
		BasketRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages order creation from an arbitrary product
	// selection, which reads the catalog and writes the order store.
	OrderingUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// DispatchUoW manages courier assignment, which reads the courier
	// store and writes claims to the order store.
	DispatchUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
