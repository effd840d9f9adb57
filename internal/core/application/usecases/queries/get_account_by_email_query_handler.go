package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// roleStores lists the four role tables in the fixed probe order used by
// account lookups: customers, admins, service offerors, couriers. The
// profileColumns fragment pads every store out to the same six profile
// columns (address, phone, status, salary, area, service_type) so each
// store scans identically.
var roleStores = []struct {
	table          string
	role           string
	profileColumns string
}{
	{"customers", "customer",
		`address, phone, '' AS status, 0::float8 AS salary, '' AS area, '' AS service_type`},
	{"admins", "admin",
		`'' AS address, '' AS phone, status, 0::float8 AS salary, '' AS area, '' AS service_type`},
	{"service_offerors", "serviceOfferor",
		`'' AS address, '' AS phone, '' AS status, 0::float8 AS salary, area, service_type`},
	{"couriers", "courier",
		`'' AS address, '' AS phone, status, salary, area, '' AS service_type`},
}

// profileDest appends the scan destinations for the six padded profile
// columns to the shared ones.
func profileDest(shared []any, profile *AccountProfile) []any {
	return append(shared,
		&profile.Address, &profile.Phone, &profile.Status,
		&profile.Salary, &profile.Area, &profile.ServiceType)
}

// GetAccountByEmailQueryHandler looks up an account by email across the
// four role stores. The stores are probed in a fixed order so that a
// lookup is deterministic even if uniqueness were ever violated:
// customers, admins, service offerors, couriers.
type GetAccountByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByEmailQueryHandler creates a handler for email lookups.
// Requires a GORM database connection for query execution.
func NewGetAccountByEmailQueryHandler(db *gorm.DB) GetAccountByEmailQueryHandler {
	return GetAccountByEmailQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns a not-found error when no role store holds the email.
func (h GetAccountByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetAccountByEmailQuery,
) (GetAccountByEmailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}

	for _, store := range roleStores {
		response, err := h.lookup(ctx, store.table, store.role, store.profileColumns, query.Email())
		if err == nil {
			return response, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return GetAccountByEmailQueryResponse{}, err
		}
	}

	return GetAccountByEmailQueryResponse{}, errs.NewObjectNotFoundError("email", query.Email())
}

func (h GetAccountByEmailQueryHandler) lookup(
	ctx context.Context,
	table, role, profileColumns, email string,
) (GetAccountByEmailQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(
		`SELECT id, name, email, credential, `+profileColumns+` FROM `+table+` WHERE email = ?`,
		email,
	).Row()

	var (
		id       uuid.UUID
		response GetAccountByEmailQueryResponse
	)
	dest := profileDest(
		[]any{&id, &response.Name, &response.Email, &response.Credential},
		&response.AccountProfile)
	if err := row.Scan(dest...); err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}

	response.ID = accountID
	response.Role = role

	return response, nil
}
