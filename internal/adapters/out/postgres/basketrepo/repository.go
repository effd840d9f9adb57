package basketrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBasketRepository implements BasketRepository using GORM.
type GormBasketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBasketRepository creates a new GORM basket repository.
func NewGormBasketRepository(db *gorm.DB, tracker aggregateTracker) *GormBasketRepository {
	return &GormBasketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new basket to the database.
func (r *GormBasketRepository) Add(ctx context.Context, aggregate *basket.Basket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Items.Product").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing basket, replacing its membership rows with the
// aggregate's current members.
func (r *GormBasketRepository) Update(ctx context.Context, aggregate *basket.Basket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Delete(&BasketItemDTO{}, "basket_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := db.Omit("Product").Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a basket by ID with its members.
func (r *GormBasketRepository) Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BasketDTO
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("basket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves the basket owned by the given customer.
func (r *GormBasketRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*basket.Basket, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto BasketDTO
	err := r.db.WithContext(ctx).Preload("Items.Product").
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
