package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrProductNameIsRequired is returned when creating a product without a name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product represents a catalog entry in the marketplace. It is an aggregate
// root owned by exactly one service offeror.
//
// Product follows these invariants:
//   - Must have a valid unique identifier, non-empty name, and valid owner
//   - Price and weight are non-negative, checked at creation and update
//   - The owner is immutable after creation
//   - Only approved products are purchasable
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID
	// name is the display name of the product
	name string
	// details is the free-form product description
	details string
	// weight is the product weight in grams
	weight float64
	// price is the product price
	price float64
	// category groups the product in the catalog
	category string
	// status is the availability state
	status Status
	// ownerID identifies the owning service offeror, immutable after creation
	ownerID kernel.UUID
	// guard ensures the product was created via NewProduct
	guard guard.ConstructorGuard
}

// NewProduct creates a new catalog entry owned by the given service offeror.
// The product starts in pending status and must be approved before it is
// purchasable. Price and weight must be non-negative.
func NewProduct(
	id kernel.UUID,
	name, details string,
	weight, price float64,
	category string,
	ownerID kernel.UUID,
) (*Product, error) {
	product := &Product{
		details:  details,
		category: category,
		status:   StatusPending,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setWeight(weight),
		product.setPrice(price),
		product.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage,
// including its persisted status.
func RestoreProduct(
	id kernel.UUID,
	name, details string,
	weight, price float64,
	category string,
	status Status,
	ownerID kernel.UUID,
) (*Product, error) {
	product, err := NewProduct(id, name, details, weight, price, category, ownerID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	product.status = status

	return product, nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Details returns the free-form product description.
func (p *Product) Details() string {
	return p.details
}

// Weight returns the product weight in grams.
func (p *Product) Weight() float64 {
	return p.weight
}

// Price returns the product price.
func (p *Product) Price() float64 {
	return p.price
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// Status returns the availability state.
func (p *Product) Status() Status {
	return p.status
}

// OwnerID returns the owning service offeror's identifier.
func (p *Product) OwnerID() kernel.UUID {
	return p.ownerID
}

// IsOwnedBy reports whether the product belongs to the given service offeror.
func (p *Product) IsOwnedBy(offerorID kernel.UUID) bool {
	return p.ownerID.IsEqual(offerorID)
}

// IsAvailable reports whether the product is purchasable,
// which is the case only when it is approved.
func (p *Product) IsAvailable() bool {
	return p.status == StatusApproved
}

// SetAvailability moves the product to the given status.
// Any valid status is accepted from any other; there is no transition table
// for catalog entries.
func (p *Product) SetAvailability(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

// Update overwrites the product's name, price, and details.
// The same non-negativity rule as at creation applies to price.
// Ownership checks happen at the application layer, which resolves
// the acting service offeror.
func (p *Product) Update(name string, price float64, details string) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return err
	}

	p.details = details
	return nil
}

// Profile produces the flat external view of the product.
func (p *Product) Profile() map[string]any {
	return map[string]any{
		"id":       p.id.String(),
		"name":     p.name,
		"details":  p.details,
		"weight":   p.weight,
		"price":    p.price,
		"category": p.category,
		"status":   p.status.String(),
		"owner_id": p.ownerID.String(),
	}
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is negative", weight))
	}
	p.weight = weight
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	p.ownerID = ownerID
	return nil
}
