package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// CourierStatusActive marks a courier as available for order assignment.
const CourierStatusActive = "active"

// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier is an account that fulfills orders.
// A courier owns any number of orders as fulfiller; no capacity limit is
// enforced by this model.
type Courier struct {
	Identity

	// status is a free-form activity marker; "active" couriers are
	// eligible for automatic assignment
	status string
	// salary is the courier's pay
	salary float64
	// area is the zone the courier covers
	area string
}

// NewCourier creates a new Courier account.
func NewCourier(id kernel.UUID, name, email, credential, status string, salary float64, area string) (*Courier, error) {
	identity, err := NewIdentity(id, name, email, credential)
	if err != nil {
		return nil, err
	}

	return &Courier{
		Identity: identity,
		status:   status,
		salary:   salary,
		area:     area,
	}, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, name, email, credential, status string, salary float64, area string) (*Courier, error) {
	return NewCourier(id, name, email, credential, status, salary, area)
}

// Role returns RoleCourier.
func (c *Courier) Role() Role {
	return RoleCourier
}

// Status returns the courier's activity marker.
func (c *Courier) Status() string {
	return c.status
}

// Salary returns the courier's pay.
func (c *Courier) Salary() float64 {
	return c.salary
}

// Area returns the zone the courier covers.
func (c *Courier) Area() string {
	return c.area
}

// IsActive reports whether the courier is eligible for automatic assignment.
func (c *Courier) IsActive() bool {
	return c.status == CourierStatusActive
}

// ChangeArea moves the courier to a new coverage zone.
func (c *Courier) ChangeArea(area string) {
	c.area = area
}

// ApplyUpdate overwrites recognized fields: status, area, salary.
// Unrecognized field names are silently ignored.
func (c *Courier) ApplyUpdate(fields map[string]any) {
	if v, ok := stringField(fields, "status"); ok {
		c.status = v
	}
	if v, ok := stringField(fields, "area"); ok {
		c.area = v
	}
	if v, ok := floatField(fields, "salary"); ok {
		c.salary = v
	}
}

// Profile returns the courier projection: shared fields plus status, salary, area.
func (c *Courier) Profile() map[string]any {
	profile := c.baseProfile(RoleCourier)
	profile["status"] = c.status
	profile["salary"] = c.salary
	profile["area"] = c.area
	return profile
}

// Validate ensures the courier was created through NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}
