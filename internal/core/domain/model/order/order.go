package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrOrderItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrOrderIsFinal is returned when mutating the membership of a
	// delivered or cancelled order.
	ErrOrderIsFinal = errors.New("order membership cannot change after delivery or cancellation")
	// ErrOrderAlreadyClaimed is returned when claiming an order that
	// another courier already claimed.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed by a courier")
)

// Item is an order member: a reference to a catalog entry together with the
// price and weight it contributes to the order's derived totals.
// Item is an immutable value object. Unlike basket members, the same
// product may appear in an order more than once.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     float64
	weight    float64

	guard guard.ConstructorGuard
}

// NewItem creates an order item for the given product.
// Price and weight must be non-negative; missing values are passed as 0.
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

// Price returns the price the item contributes to the order total.
func (i Item) Price() float64 {
	return i.price
}

// Weight returns the weight the item contributes to the order total.
func (i Item) Weight() float64 {
	return i.weight
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
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

// Order represents a purchase in the marketplace. It is the aggregate root
// managing the fulfillment lifecycle from placement through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and purchaser
//   - Derived price and total weight always equal the sum over members
//   - Status transitions follow the lifecycle state machine
//   - Membership freezes once a terminal state is reached
//   - The fulfiller is assigned at most once (compare-and-set)
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID
	// purchaserID is the customer who placed the order
	purchaserID kernel.UUID
	// courierID is the assigned fulfiller (nil if unclaimed)
	courierID *kernel.UUID
	// items are the purchased products; duplicates are allowed
	items []Item
	// price is derived: the sum of member prices
	price float64
	// totalWeight is derived: the sum of member weights
	totalWeight float64
	// status is the current lifecycle state
	status Status
	// createdAt is when the order was placed
	createdAt time.Time
	// pickupAddress is where the courier collects the order
	pickupAddress string
	// deliveryAddress is where the courier delivers the order
	deliveryAddress string
	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new order for the given purchaser.
// The order starts in pending status with totals derived from items.
// An empty selection is allowed and produces a degenerate order with
// zero totals.
func NewOrder(
	id, purchaserID kernel.UUID,
	items []Item,
	pickupAddress, deliveryAddress string,
) (*Order, error) {
	order := &Order{
		status:          StatusPending,
		createdAt:       time.Now().UTC(),
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		items:           make([]Item, 0, len(items)),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setPurchaserID(purchaserID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Derived totals are recomputed from the restored members rather than
// trusted from storage.
func RestoreOrder(
	id, purchaserID kernel.UUID,
	courierID *kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
	pickupAddress, deliveryAddress string,
) (*Order, error) {
	order, err := NewOrder(id, purchaserID, items, pickupAddress, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.courierID = courierID
	order.createdAt = createdAt

	return order, nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PurchaserID returns the customer who placed the order.
func (o *Order) PurchaserID() kernel.UUID {
	return o.purchaserID
}

// Courier returns the assigned fulfiller's ID, or nil if unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns the purchased products.
func (o *Order) Items() []Item {
	return o.items
}

// Price returns the derived total price.
func (o *Order) Price() float64 {
	return o.price
}

// TotalWeight returns the derived total weight.
func (o *Order) TotalWeight() float64 {
	return o.totalWeight
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickupAddress returns where the courier collects the order.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns where the courier delivers the order.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// UpdateStatus transitions the order to the given lifecycle state.
// Illegal transitions are rejected with a validation error.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order. Shorthand for UpdateStatus(StatusCancelled);
// fails on orders that are already terminal.
func (o *Order) Cancel() error {
	return o.UpdateStatus(StatusCancelled)
}

// Claim assigns the order to a courier.
//
// Assignment is compare-and-set: it only succeeds while the order is
// unclaimed. A second claim fails with a conflict instead of silently
// overwriting the first, so concurrent claimants resolve to one winner.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot claim a %s order", o.status))
	}

	if o.courierID != nil {
		return errs.NewConflictErrorWithCause("courierId", ErrOrderAlreadyClaimed)
	}

	o.courierID = &courierID
	return nil
}

// AddProducts appends items to the order and recomputes the totals.
// Duplicates are allowed. Fails once the order is delivered or cancelled.
func (o *Order) AddProducts(items []Item) error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinal
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append(o.items, items...)
	o.recomputeTotals()
	return nil
}

// RemoveProduct removes the first member referencing the given product and
// recomputes the totals. Removing an absent product is a no-op.
// Fails once the order is delivered or cancelled.
func (o *Order) RemoveProduct(productID kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderIsFinal
	}

	for i, item := range o.items {
		if item.productID.IsEqual(productID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.recomputeTotals()
			break
		}
	}
	return nil
}

// ChangePickupAddress moves the pickup point.
func (o *Order) ChangePickupAddress(address string) {
	o.pickupAddress = address
}

// ChangeDeliveryAddress moves the delivery destination.
func (o *Order) ChangeDeliveryAddress(address string) {
	o.deliveryAddress = address
}

// Profile produces the flat external view of the order.
func (o *Order) Profile() map[string]any {
	productIDs := make([]string, 0, len(o.items))
	for _, item := range o.items {
		productIDs = append(productIDs, item.productID.String())
	}

	profile := map[string]any{
		"id":               o.id.String(),
		"customer_id":      o.purchaserID.String(),
		"status":           o.status.String(),
		"price":            o.price,
		"total_weight":     o.totalWeight,
		"order_date":       o.createdAt,
		"pickup_address":   o.pickupAddress,
		"delivery_address": o.deliveryAddress,
		"product_ids":      productIDs,
	}
	if o.courierID != nil {
		profile["courier_id"] = o.courierID.String()
	}
	return profile
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// recomputeTotals re-derives price and total weight from current membership.
// Called on every membership change so totals and members move together.
func (o *Order) recomputeTotals() {
	price := 0.0
	weight := 0.0
	for _, item := range o.items {
		price += item.price
		weight += item.weight
	}
	o.price = price
	o.totalWeight = weight
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPurchaserID(purchaserID kernel.UUID) error {
	if err := purchaserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("purchaserId", err)
	}
	o.purchaserID = purchaserID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append(o.items, items...)
	o.recomputeTotals()
	return nil
}
