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

// GetBasketQueryHandler retrieves a customer's basket from the database.
// Member prices and weights come from the catalog, so the returned totals
// always reflect current listings.
type GetBasketQueryHandler struct {
	db *gorm.DB
}

// NewGetBasketQueryHandler creates a handler for basket queries.
// Requires a GORM database connection for query execution.
func NewGetBasketQueryHandler(db *gorm.DB) GetBasketQueryHandler {
	return GetBasketQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's basket.
// Returns a not-found error when the customer has no basket.
func (h GetBasketQueryHandler) Handle(
	ctx context.Context,
	query GetBasketQuery,
) (GetBasketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBasketQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		`SELECT id FROM baskets WHERE customer_id = ?`,
		query.CustomerID().Bytes(),
	).Row()

	var basketID uuid.UUID
	if err := row.Scan(&basketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBasketQueryResponse{}, errs.NewObjectNotFoundError(
				"customerId", query.CustomerID().String())
		}
		return GetBasketQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(basketID[:])
	if err != nil {
		return GetBasketQueryResponse{}, err
	}

	response := GetBasketQueryResponse{
		ID:         id,
		CustomerID: query.CustomerID(),
		Items:      make([]GetBasketQueryItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.price, p.weight
		FROM basket_items bi
		JOIN products p ON p.id = bi.product_id
		WHERE bi.basket_id = ?
		ORDER BY p.name
	`, basketID).Rows()
	if err != nil {
		return GetBasketQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			item      GetBasketQueryItemResponse
		)

		if err = rows.Scan(&productID, &item.Name, &item.Price, &item.Weight); err != nil {
			return GetBasketQueryResponse{}, err
		}

		memberID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetBasketQueryResponse{}, idErr
		}
		item.ProductID = memberID

		response.Items = append(response.Items, item)
		response.Price += item.Price
	}

	if err = rows.Err(); err != nil {
		return GetBasketQueryResponse{}, err
	}

	return response, nil
}
