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

// GetAccountQueryHandler looks up an account by ID across the four role
// stores, probed in the same fixed order as email lookups: customers,
// admins, service offerors, couriers.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for account lookups by ID.
// Requires a GORM database connection for query execution.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns a not-found error when no role store holds the identifier.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	for _, store := range roleStores {
		row := h.db.WithContext(ctx).Raw(
			`SELECT id, name, email, `+store.profileColumns+` FROM `+store.table+` WHERE id = ?`,
			query.AccountID().Bytes(),
		).Row()

		var (
			id       uuid.UUID
			response GetAccountQueryResponse
		)
		dest := profileDest(
			[]any{&id, &response.Name, &response.Email},
			&response.AccountProfile)
		err := row.Scan(dest...)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return GetAccountQueryResponse{}, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetAccountQueryResponse{}, idErr
		}

		response.ID = accountID
		response.Role = store.role
		return response, nil
	}

	return GetAccountQueryResponse{}, errs.NewObjectNotFoundError(
		"accountId", query.AccountID().String())
}
