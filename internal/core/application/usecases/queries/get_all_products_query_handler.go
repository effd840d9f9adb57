package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves catalog entries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog entries.
// Returns a slice of product read models sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, name, details, weight, price, category, status, owner_id
		FROM products
	`
	args := make([]any, 0, 1)
	if query.AvailableOnly() {
		sqlQuery += ` WHERE status = ?`
		args = append(args, "approved")
	}
	sqlQuery += ` ORDER BY name`

	products := make([]GetAllProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			ownerID uuid.UUID
			entry   GetAllProductsQueryResponse
		)

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Details,
			&entry.Weight,
			&entry.Price,
			&entry.Category,
			&entry.Status,
			&ownerID,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = productID

		offerorID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OwnerID = offerorID

		products = append(products, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
