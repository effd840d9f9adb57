package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an account that orders products from service offerors.
// A customer owns at most one basket and any number of orders as purchaser;
// both are separate aggregates referencing the customer by ID.
type Customer struct {
	Identity

	// address is the customer's delivery address
	address string
	// phone is the customer's contact number
	phone string
}

// NewCustomer creates a new Customer account.
// Identity fields are required; address and phone may be empty and filled
// in later through ApplyUpdate.
func NewCustomer(id kernel.UUID, name, email, credential, address, phone string) (*Customer, error) {
	identity, err := NewIdentity(id, name, email, credential)
	if err != nil {
		return nil, err
	}

	return &Customer{
		Identity: identity,
		address:  address,
		phone:    phone,
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.UUID, name, email, credential, address, phone string) (*Customer, error) {
	return NewCustomer(id, name, email, credential, address, phone)
}

// Role returns RoleCustomer.
func (c *Customer) Role() Role {
	return RoleCustomer
}

// Address returns the customer's delivery address.
func (c *Customer) Address() string {
	return c.address
}

// Phone returns the customer's contact number.
func (c *Customer) Phone() string {
	return c.phone
}

// ApplyUpdate overwrites recognized fields: name, email, address, phone.
// Unrecognized field names are silently ignored.
func (c *Customer) ApplyUpdate(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		c.rename(v)
	}
	if v, ok := stringField(fields, "email"); ok {
		c.changeEmail(v)
	}
	if v, ok := stringField(fields, "address"); ok {
		c.address = v
	}
	if v, ok := stringField(fields, "phone"); ok {
		c.phone = v
	}
}

// Profile returns the customer projection: shared fields plus address and phone.
func (c *Customer) Profile() map[string]any {
	profile := c.baseProfile(RoleCustomer)
	profile["address"] = c.address
	profile["phone"] = c.phone
	return profile
}

// Validate ensures the customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
