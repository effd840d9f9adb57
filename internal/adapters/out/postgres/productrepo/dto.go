// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Status is stored as its string form and indexed for the
// storefront's approved-only listing.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Details  string
	Weight   float64
	Price    float64
	Category string
	Status   string    `gorm:"index"`
	OwnerID  uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Details:  aggregate.Details(),
		Weight:   aggregate.Weight(),
		Price:    aggregate.Price(),
		Category: aggregate.Category(),
		Status:   aggregate.Status().String(),
		OwnerID:  aggregate.OwnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := product.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Details, dto.Weight, dto.Price, dto.Category, status, ownerID)
}
