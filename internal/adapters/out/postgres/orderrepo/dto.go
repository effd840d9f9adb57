// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Ledger rows snapshot price and weight at
// purchase time, so order history survives later catalog edits and
// removals.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its string form and indexed together
// with the courier slot for the dispatch scan.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	PurchaserID     uuid.UUID      `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID     `gorm:"type:uuid;index"`
	Status          string         `gorm:"index"`
	CreatedAt       time.Time
	PickupAddress   string
	DeliveryAddress string
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ledger row. The surrogate key allows the
// same product to appear in an order more than once.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Price     float64
	Weight    float64
}

// TableName specifies the database table name for order ledger rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Each ledger row gets a fresh surrogate key.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        kernel.NewUUID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Price:     item.Price(),
			Weight:    item.Weight(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		PurchaserID:     aggregate.PurchaserID().Bytes(),
		CourierID:       courierID,
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Requires the Items association to be preloaded; derived totals are
// recomputed by RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	purchaserID, err := kernel.UUIDFromBytes(dto.PurchaserID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		claimedBy, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &claimedBy
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Price, itemDTO.Weight)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id, purchaserID, courierID,
		items, status, dto.CreatedAt,
		dto.PickupAddress, dto.DeliveryAddress,
	)
}
