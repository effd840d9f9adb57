package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrAdminIsNotConstructed is returned when using an improperly initialized Admin.
var ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin constructor")

// Admin is an account with administrative capability over catalog approval
// and account oversight. The capability is not tied to any single catalog
// entry; approval targets are chosen per operation.
type Admin struct {
	Identity

	// status is a free-form activity marker, e.g. "active"
	status string
}

// NewAdmin creates a new Admin account.
func NewAdmin(id kernel.UUID, name, email, credential, status string) (*Admin, error) {
	identity, err := NewIdentity(id, name, email, credential)
	if err != nil {
		return nil, err
	}

	return &Admin{
		Identity: identity,
		status:   status,
	}, nil
}

// RestoreAdmin reconstructs an Admin from persistent storage.
func RestoreAdmin(id kernel.UUID, name, email, credential, status string) (*Admin, error) {
	return NewAdmin(id, name, email, credential, status)
}

// Role returns RoleAdmin.
func (a *Admin) Role() Role {
	return RoleAdmin
}

// Status returns the admin's activity marker.
func (a *Admin) Status() string {
	return a.status
}

// ApplyUpdate overwrites recognized fields: name, status.
// Unrecognized field names are silently ignored.
func (a *Admin) ApplyUpdate(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		a.rename(v)
	}
	if v, ok := stringField(fields, "status"); ok {
		a.status = v
	}
}

// Profile returns the admin projection: shared fields plus status.
func (a *Admin) Profile() map[string]any {
	profile := a.baseProfile(RoleAdmin)
	profile["status"] = a.status
	return profile
}

// Validate ensures the admin was created through NewAdmin.
func (a *Admin) Validate() error {
	if a == nil {
		return ErrAdminIsNotConstructed
	}
	return a.guard.Validate(ErrAdminIsNotConstructed)
}
