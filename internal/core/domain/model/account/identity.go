package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors shared by all account kinds.
var (
	// ErrNameIsRequired is returned when creating an account without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when creating an account without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCredentialIsRequired is returned when creating an account without a credential.
	ErrCredentialIsRequired = errs.NewValueIsRequiredError("credential")
	// ErrIdentityIsNotConstructed is returned when using an improperly initialized Identity.
	ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")
)

// Account is the contract all four role aggregates satisfy.
// It is the "one namespace of accounts, four shapes" view: callers that do
// not care which concrete role they hold (login, account listing, generic
// partial updates) work against this interface.
type Account interface {
	// ID returns the account's unique identifier.
	ID() kernel.UUID

	// Name returns the account holder's display name.
	Name() string

	// Email returns the account's email, unique across all roles.
	Email() string

	// Role returns the concrete kind of this account.
	Role() Role

	// CheckCredential reports whether attempt matches the stored credential
	// exactly. No normalization is applied and no side effects occur.
	CheckCredential(attempt string) bool

	// ApplyUpdate overwrites each recognized field present in fields and
	// silently ignores unrecognized names. This is a PATCH contract, not
	// partial validation.
	ApplyUpdate(fields map[string]any)

	// Profile produces the role-appropriate flat projection of the account:
	// the shared {id, name, email, role} plus the role-specific fields.
	Profile() map[string]any

	// Validate ensures the account was created through its constructor.
	Validate() error
}

// Identity carries the attributes and behavior shared by all account kinds.
// It is reused by the four role aggregates via composition; Identity itself
// is never persisted on its own.
//
// The credential is an opaque secret compared verbatim on login. Hashing is
// out of scope for this model; only the pass/fail contract matters.
type Identity struct {
	id         kernel.UUID
	name       string
	email      string
	credential string

	guard guard.ConstructorGuard
}

// NewIdentity creates the shared identity portion of an account.
// All fields are required; errors are aggregated.
func NewIdentity(id kernel.UUID, name, email, credential string) (Identity, error) {
	identity := Identity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		identity.setID(id),
		identity.setName(name),
		identity.setEmail(email),
		identity.setCredential(credential),
	); err != nil {
		return Identity{}, err
	}

	return identity, nil
}

// ID returns the account's unique identifier.
func (i Identity) ID() kernel.UUID {
	return i.id
}

// Name returns the account holder's display name.
func (i Identity) Name() string {
	return i.name
}

// Email returns the account's email address.
func (i Identity) Email() string {
	return i.email
}

// CheckCredential reports whether attempt equals the stored credential
// exactly. There is no normalization and no timing-safety guarantee.
func (i Identity) CheckCredential(attempt string) bool {
	return i.credential == attempt
}

// Credential returns the stored opaque secret.
// Exposed for persistence mapping only.
func (i Identity) Credential() string {
	return i.credential
}

// Validate ensures the identity was created through NewIdentity.
func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

// baseProfile is the shared projection all role profiles build on.
func (i Identity) baseProfile(role Role) map[string]any {
	return map[string]any{
		"id":    i.id.String(),
		"name":  i.name,
		"email": i.email,
		"role":  role.String(),
	}
}

// rename overwrites the display name if the new value is non-empty.
// Used by role aggregates during partial updates, where empty values
// are ignored rather than rejected.
func (i *Identity) rename(name string) {
	if name != "" {
		i.name = name
	}
}

// changeEmail overwrites the email if the new value is non-empty.
func (i *Identity) changeEmail(email string) {
	if email != "" {
		i.email = email
	}
}

func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Identity) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Identity) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	i.email = email
	return nil
}

func (i *Identity) setCredential(credential string) error {
	if credential == "" {
		return ErrCredentialIsRequired
	}
	i.credential = credential
	return nil
}

// stringField extracts a string value for key from a partial-update map.
// Missing keys and non-string values are silently ignored per the
// permissive update contract.
func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// floatField extracts a numeric value for key from a partial-update map.
// JSON decoding produces float64; int is accepted for direct callers.
func floatField(fields map[string]any, key string) (float64, bool) {
	v, ok := fields[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
