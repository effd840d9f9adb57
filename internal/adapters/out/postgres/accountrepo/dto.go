// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Each marketplace role is stored in its own table;
// the repository resolves the role from the aggregate it is handed.
package accountrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Credential string
	Address    string
	Phone      string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AdminDTO represents the database structure for persisting admins.
type AdminDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Credential string
	Status     string
}

// TableName specifies the database table name for admin entities.
func (AdminDTO) TableName() string {
	return "admins"
}

// CourierDTO represents the database structure for persisting couriers.
// Status is indexed for the active-courier scan used by dispatching.
type CourierDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Credential string
	Status     string `gorm:"index"`
	Salary     float64
	Area       string
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// ServiceOfferorDTO represents the database structure for persisting
// service offerors.
type ServiceOfferorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Email       string `gorm:"uniqueIndex"`
	Credential  string
	ServiceType string
	Area        string
}

// TableName specifies the database table name for service offeror entities.
func (ServiceOfferorDTO) TableName() string {
	return "service_offerors"
}

func customerFromDomain(customer *account.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         customer.ID().Bytes(),
		Name:       customer.Name(),
		Email:      customer.Email(),
		Credential: customer.Credential(),
		Address:    customer.Address(),
		Phone:      customer.Phone(),
	}
}

func customerToDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreCustomer(id, dto.Name, dto.Email, dto.Credential, dto.Address, dto.Phone)
}

func adminFromDomain(admin *account.Admin) AdminDTO {
	return AdminDTO{
		ID:         admin.ID().Bytes(),
		Name:       admin.Name(),
		Email:      admin.Email(),
		Credential: admin.Credential(),
		Status:     admin.Status(),
	}
}

func adminToDomain(dto AdminDTO) (*account.Admin, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAdmin(id, dto.Name, dto.Email, dto.Credential, dto.Status)
}

func courierFromDomain(courier *account.Courier) CourierDTO {
	return CourierDTO{
		ID:         courier.ID().Bytes(),
		Name:       courier.Name(),
		Email:      courier.Email(),
		Credential: courier.Credential(),
		Status:     courier.Status(),
		Salary:     courier.Salary(),
		Area:       courier.Area(),
	}
}

func courierToDomain(dto CourierDTO) (*account.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreCourier(id, dto.Name, dto.Email, dto.Credential, dto.Status, dto.Salary, dto.Area)
}

func serviceOfferorFromDomain(offeror *account.ServiceOfferor) ServiceOfferorDTO {
	return ServiceOfferorDTO{
		ID:          offeror.ID().Bytes(),
		Name:        offeror.Name(),
		Email:       offeror.Email(),
		Credential:  offeror.Credential(),
		ServiceType: offeror.ServiceType(),
		Area:        offeror.Area(),
	}
}

func serviceOfferorToDomain(dto ServiceOfferorDTO) (*account.ServiceOfferor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreServiceOfferor(id, dto.Name, dto.Email, dto.Credential, dto.ServiceType, dto.Area)
}
