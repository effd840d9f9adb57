// Package basketrepo provides data transfer objects and mapping functions
// for basket persistence. Membership rows carry no attributes of their
// own; member price and weight are joined in from the catalog at load
// time, so a basket always reflects current listings.
package basketrepo

import (
	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BasketDTO represents the database structure for persisting basket
// aggregates. Every customer owns at most one basket.
type BasketDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Items      []BasketItemDTO `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for basket entities.
func (BasketDTO) TableName() string {
	return "baskets"
}

// BasketItemDTO represents one basket membership row. The composite key
// encodes the set semantics: a basket holds each product at most once.
type BasketItemDTO struct {
	BasketID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Product   ProductRef `gorm:"foreignKey:ProductID"`
}

// TableName specifies the database table name for basket membership rows.
func (BasketItemDTO) TableName() string {
	return "basket_items"
}

// ProductRef is a read-only projection of the products table used to
// join member price and weight when loading a basket.
type ProductRef struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Price  float64
	Weight float64
}

// TableName points the projection at the products table.
func (ProductRef) TableName() string {
	return "products"
}

// fromDomain converts a basket domain aggregate to its database representation.
func fromDomain(aggregate *basket.Basket) BasketDTO {
	items := make([]BasketItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, BasketItemDTO{
			BasketID:  aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
		})
	}

	return BasketDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a basket domain aggregate.
// Requires the Items association to be preloaded with its Product
// projection; the derived price is recomputed by RestoreBasket.
func toDomain(dto BasketDTO) (*basket.Basket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]basket.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := basket.NewItem(productID, itemDTO.Product.Price, itemDTO.Product.Weight)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return basket.RestoreBasket(id, customerID, items)
}
