package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAccountsQueryHandler retrieves every account from the four role
// stores with a single union query.
type GetAllAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAccountsQueryHandler creates a handler for account listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllAccountsQueryHandler(db *gorm.DB) GetAllAccountsQueryHandler {
	return GetAllAccountsQueryHandler{db: db}
}

// Handle executes the query to retrieve all accounts.
// Returns a slice of account read models sorted by name.
func (h GetAllAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAccountsQuery,
) ([]GetAllAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]GetAllAccountsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, 'customer' AS role, name, email,
		       address, phone, '' AS status, 0::float8 AS salary, '' AS area, '' AS service_type
		FROM customers
		UNION ALL
		SELECT id, 'admin' AS role, name, email,
		       '' AS address, '' AS phone, status, 0::float8 AS salary, '' AS area, '' AS service_type
		FROM admins
		UNION ALL
		SELECT id, 'serviceOfferor' AS role, name, email,
		       '' AS address, '' AS phone, '' AS status, 0::float8 AS salary, area, service_type
		FROM service_offerors
		UNION ALL
		SELECT id, 'courier' AS role, name, email,
		       '' AS address, '' AS phone, status, salary, area, '' AS service_type
		FROM couriers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			account GetAllAccountsQueryResponse
		)

		dest := profileDest(
			[]any{&id, &account.Role, &account.Name, &account.Email},
			&account.AccountProfile)
		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		account.ID = accountID

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
