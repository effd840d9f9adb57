package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
// Each role lives in its own table; lookups that do not know the role
// probe the tables in a fixed order: customers, admins, service
// offerors, couriers.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.persist(ctx, aggregate, func(db *gorm.DB, dto any) *gorm.DB {
		return db.Create(dto)
	}); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.persist(ctx, aggregate, func(db *gorm.DB, dto any) *gorm.DB {
		return db.Save(dto)
	}); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// persist dispatches the aggregate to its role's table.
func (r *GormAccountRepository) persist(
	ctx context.Context,
	aggregate account.Account,
	operation func(db *gorm.DB, dto any) *gorm.DB,
) error {
	db := r.db.WithContext(ctx)

	switch concrete := aggregate.(type) {
	case *account.Customer:
		dto := customerFromDomain(concrete)
		return operation(db, &dto).Error
	case *account.Admin:
		dto := adminFromDomain(concrete)
		return operation(db, &dto).Error
	case *account.Courier:
		dto := courierFromDomain(concrete)
		return operation(db, &dto).Error
	case *account.ServiceOfferor:
		dto := serviceOfferorFromDomain(concrete)
		return operation(db, &dto).Error
	default:
		return fmt.Errorf("unsupported account type %T", aggregate)
	}
}

// Get retrieves an account of any role by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if customer, err := r.GetCustomer(ctx, id); err == nil {
		return customer, nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if admin, err := r.GetAdmin(ctx, id); err == nil {
		return admin, nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if offeror, err := r.GetServiceOfferor(ctx, id); err == nil {
		return offeror, nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if courier, err := r.GetCourier(ctx, id); err == nil {
		return courier, nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	return nil, errs.NewObjectNotFoundError("account", id.String())
}

// GetByEmail retrieves an account of any role by email address.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	var customerDTO CustomerDTO
	err := r.db.WithContext(ctx).First(&customerDTO, "email = ?", email).Error
	if err == nil {
		return customerToDomain(customerDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var adminDTO AdminDTO
	err = r.db.WithContext(ctx).First(&adminDTO, "email = ?", email).Error
	if err == nil {
		return adminToDomain(adminDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var offerorDTO ServiceOfferorDTO
	err = r.db.WithContext(ctx).First(&offerorDTO, "email = ?", email).Error
	if err == nil {
		return serviceOfferorToDomain(offerorDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var courierDTO CourierDTO
	err = r.db.WithContext(ctx).First(&courierDTO, "email = ?", email).Error
	if err == nil {
		return courierToDomain(courierDTO)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, errs.NewObjectNotFoundError("email", email)
}

// GetCustomer retrieves a customer by ID.
func (r *GormAccountRepository) GetCustomer(ctx context.Context, id kernel.UUID) (*account.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

// GetAdmin retrieves an admin by ID.
func (r *GormAccountRepository) GetAdmin(ctx context.Context, id kernel.UUID) (*account.Admin, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin", id.String())
		}
		return nil, err
	}

	return adminToDomain(dto)
}

// GetCourier retrieves a courier by ID.
func (r *GormAccountRepository) GetCourier(ctx context.Context, id kernel.UUID) (*account.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return courierToDomain(dto)
}

// GetServiceOfferor retrieves a service offeror by ID.
func (r *GormAccountRepository) GetServiceOfferor(ctx context.Context, id kernel.UUID) (*account.ServiceOfferor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceOfferorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceOfferor", id.String())
		}
		return nil, err
	}

	return serviceOfferorToDomain(dto)
}

// GetAllActiveCouriers retrieves every courier whose status is active.
func (r *GormAccountRepository) GetAllActiveCouriers(ctx context.Context) ([]*account.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", account.CourierStatusActive).Error; err != nil {
		return nil, err
	}

	couriers := make([]*account.Courier, 0, len(dtos))
	for _, dto := range dtos {
		courier, err := courierToDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, courier)
	}

	return couriers, nil
}
