package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrServiceOfferorIsNotConstructed is returned when using an improperly initialized ServiceOfferor.
var ErrServiceOfferorIsNotConstructed = errors.New(
	"ServiceOfferor must be created via NewServiceOfferor constructor")

// ServiceOfferor is an account that owns and publishes catalog entries.
// Every product belongs to exactly one service offeror; ownership is set at
// publication and never transferred.
type ServiceOfferor struct {
	Identity

	// serviceType describes what the offeror sells, e.g. "restaurant"
	serviceType string
	// area is the zone the offeror serves
	area string
}

// NewServiceOfferor creates a new ServiceOfferor account.
func NewServiceOfferor(id kernel.UUID, name, email, credential, serviceType, area string) (*ServiceOfferor, error) {
	identity, err := NewIdentity(id, name, email, credential)
	if err != nil {
		return nil, err
	}

	return &ServiceOfferor{
		Identity:    identity,
		serviceType: serviceType,
		area:        area,
	}, nil
}

// RestoreServiceOfferor reconstructs a ServiceOfferor from persistent storage.
func RestoreServiceOfferor(id kernel.UUID, name, email, credential, serviceType, area string) (*ServiceOfferor, error) {
	return NewServiceOfferor(id, name, email, credential, serviceType, area)
}

// Role returns RoleServiceOfferor.
func (s *ServiceOfferor) Role() Role {
	return RoleServiceOfferor
}

// ServiceType describes what the offeror sells.
func (s *ServiceOfferor) ServiceType() string {
	return s.serviceType
}

// Area returns the zone the offeror serves.
func (s *ServiceOfferor) Area() string {
	return s.area
}

// ApplyUpdate overwrites recognized fields: service_type, area.
// Unrecognized field names are silently ignored.
func (s *ServiceOfferor) ApplyUpdate(fields map[string]any) {
	if v, ok := stringField(fields, "service_type"); ok {
		s.serviceType = v
	}
	if v, ok := stringField(fields, "area"); ok {
		s.area = v
	}
}

// Profile returns the offeror projection: shared fields plus service_type and area.
func (s *ServiceOfferor) Profile() map[string]any {
	profile := s.baseProfile(RoleServiceOfferor)
	profile["service_type"] = s.serviceType
	profile["area"] = s.area
	return profile
}

// Validate ensures the offeror was created through NewServiceOfferor.
func (s *ServiceOfferor) Validate() error {
	if s == nil {
		return ErrServiceOfferorIsNotConstructed
	}
	return s.guard.Validate(ErrServiceOfferorIsNotConstructed)
}
