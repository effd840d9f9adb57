package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves orders from the database.
// Totals are aggregated from the order's ledger rows, which snapshot
// price and weight at purchase time.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders.
// Returns a slice of order read models sorted by creation time, newest
// first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, purchaser_id, courier_id, status, created_at,
		       pickup_address, delivery_address
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.CustomerID() != nil {
		sqlQuery += ` WHERE purchaser_id = ?`
		args = append(args, query.CustomerID().Bytes())
	}
	sqlQuery += ` ORDER BY created_at DESC`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			purchaserID uuid.UUID
			courierID   *uuid.UUID
			response    GetOrdersQueryResponse
		)

		err = rows.Scan(
			&id,
			&purchaserID,
			&courierID,
			&response.Status,
			&response.CreatedAt,
			&response.PickupAddress,
			&response.DeliveryAddress,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(purchaserID[:]); err != nil {
			return nil, err
		}
		if courierID != nil {
			claimedBy, idErr := kernel.UUIDFromBytes((*courierID)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.CourierID = &claimedBy
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err = h.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// loadItems attaches the order's selection and accumulates the totals.
func (h GetOrdersQueryHandler) loadItems(ctx context.Context, response *GetOrdersQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, price, weight
		FROM order_items
		WHERE order_id = ?
	`, response.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	response.ProductIDs = make([]kernel.UUID, 0)

	for rows.Next() {
		var (
			productID     uuid.UUID
			price, weight float64
		)

		if err = rows.Scan(&productID, &price, &weight); err != nil {
			return err
		}

		memberID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}

		response.ProductIDs = append(response.ProductIDs, memberID)
		response.Price += price
		response.TotalWeight += weight
	}

	return rows.Err()
}
