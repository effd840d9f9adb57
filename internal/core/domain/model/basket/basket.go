package basket

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrBasketIsNotConstructed is returned when using an improperly initialized Basket.
	ErrBasketIsNotConstructed = errors.New("Basket must be created via NewBasket constructor")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a basket member: a reference to a catalog entry together with the
// price and weight it contributes to the basket's derived totals.
// Item is an immutable value object.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     float64
	weight    float64

	guard guard.ConstructorGuard
}

// NewItem creates a basket item for the given product.
// Price and weight must be non-negative; callers with unpriced products
// pass 0, which is how missing prices contribute to totals.
func NewItem(productID kernel.UUID, price, weight float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setPrice(price),
		item.setWeight(weight),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ProductID returns the referenced catalog entry's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Price returns the price the item contributes to the basket total.
func (i Item) Price() float64 {
	return i.price
}

// Weight returns the weight the item contributes at checkout.
func (i Item) Weight() float64 {
	return i.weight
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is negative", weight))
	}
	i.weight = weight
	return nil
}

// Basket is a customer's pre-purchase product selection. It is an aggregate
// root with set-semantics membership and a derived price that is recomputed
// on every membership change, so the two are never observed inconsistent.
type Basket struct {
	// id is the unique identifier for the basket
	id kernel.UUID
	// customerID is the owning customer, exactly one basket per customer
	customerID kernel.UUID
	// items are the current members, at most one per product
	items []Item
	// price is derived: the sum of current member prices
	price float64
	// guard ensures the basket was created via NewBasket
	guard guard.ConstructorGuard
}

// NewBasket creates an empty basket for the given customer.
func NewBasket(id, customerID kernel.UUID) (*Basket, error) {
	basket := &Basket{
		items: make([]Item, 0),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		basket.setID(id),
		basket.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return basket, nil
}

// RestoreBasket reconstructs a Basket from persistent storage.
// The derived price is recomputed from the restored members rather than
// trusted from storage.
func RestoreBasket(id, customerID kernel.UUID, items []Item) (*Basket, error) {
	basket, err := NewBasket(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	basket.items = append(basket.items, items...)
	basket.recomputePrice()

	return basket, nil
}

// IsEqual compares two baskets by their unique identifiers.
func (b *Basket) IsEqual(other *Basket) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the basket's unique identifier.
func (b *Basket) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the owning customer's identifier.
func (b *Basket) CustomerID() kernel.UUID {
	return b.customerID
}

// Items returns the current members of the basket.
func (b *Basket) Items() []Item {
	return b.items
}

// Price returns the derived total: the sum of current member prices.
func (b *Basket) Price() float64 {
	return b.price
}

// Contains reports whether the basket holds the given product.
func (b *Basket) Contains(productID kernel.UUID) bool {
	for _, item := range b.items {
		if item.productID.IsEqual(productID) {
			return true
		}
	}
	return false
}

// AddProduct inserts an item into the basket and recomputes the price.
// Membership has set semantics: adding a product already in the basket is
// a no-op, leaving membership and price unchanged.
func (b *Basket) AddProduct(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if b.Contains(item.productID) {
		return nil
	}

	b.items = append(b.items, item)
	b.recomputePrice()
	return nil
}

// RemoveProduct removes the member referencing the given product and
// recomputes the price. Removing an absent product is a no-op.
func (b *Basket) RemoveProduct(productID kernel.UUID) {
	for i, item := range b.items {
		if item.productID.IsEqual(productID) {
			b.items = append(b.items[:i], b.items[i+1:]...)
			b.recomputePrice()
			return
		}
	}
}

// Clear empties the basket and resets the price to 0.
func (b *Basket) Clear() {
	b.items = b.items[:0]
	b.recomputePrice()
}

// Validate ensures the basket was created through NewBasket.
func (b *Basket) Validate() error {
	if b == nil {
		return ErrBasketIsNotConstructed
	}
	return b.guard.Validate(ErrBasketIsNotConstructed)
}

// recomputePrice re-derives the total from current membership.
// Called on every membership change so price and members move together.
func (b *Basket) recomputePrice() {
	total := 0.0
	for _, item := range b.items {
		total += item.price
	}
	b.price = total
}

func (b *Basket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Basket) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	b.customerID = customerID
	return nil
}
