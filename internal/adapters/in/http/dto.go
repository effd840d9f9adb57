package http

import (
	"errors"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest carries the fields shared by all registration endpoints.
// Role-specific fields are optional and ignored by the other roles.
type SignUpRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Status   string  `json:"status"`
	Salary   float64 `json:"salary"`
	Area     string  `json:"area"`
	Type     string  `json:"service_type"`
}

// AccountResponse is the role-tagged account projection returned by the
// account endpoints. The credential is never echoed. Role-specific fields
// are present only for the roles that own them; Salary is a pointer so a
// courier earning 0 still serializes while other roles omit the field.
type AccountResponse struct {
	ID          string   `json:"id"`
	Role        string   `json:"role"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Status      string   `json:"status,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
	Area        string   `json:"area,omitempty"`
	ServiceType string   `json:"service_type,omitempty"`
}

// IDResponse returns the identifier assigned to a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// NewProductRequest carries a product publication.
type NewProductRequest struct {
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name"`
	Details    string  `json:"details"`
	Weight     float64 `json:"weight"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
}

// EditProductRequest carries a product edit by its owner.
type EditProductRequest struct {
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Details    string  `json:"details"`
}

// ApproveProductRequest carries an admin's catalog decision.
type ApproveProductRequest struct {
	AdminID string `json:"admin_id"`
	Status  string `json:"status"`
}

// RetractProductRequest identifies the owner retracting a listing.
type RetractProductRequest struct {
	ProviderID string `json:"provider_id"`
}

// ProductResponse is a single catalog entry.
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	Weight   float64 `json:"weight"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	OwnerID  string  `json:"provider_id"`
}

// NewOrderRequest carries a direct order placement.
type NewOrderRequest struct {
	CustomerID      string   `json:"customer_id"`
	ProductIDs      []string `json:"product_ids"`
	PickupAddress   string   `json:"pickup_address"`
	DeliveryAddress string   `json:"delivery_address"`
}

// UpdateOrderRequest carries an order mutation: a status transition, a
// courier claim, or both.
type UpdateOrderRequest struct {
	Status    string `json:"status"`
	CourierID string `json:"courier_id"`
}

// OrderResponse is a single order with its selection and derived totals.
type OrderResponse struct {
	ID              string   `json:"id"`
	CustomerID      string   `json:"customerId"`
	CourierID       *string  `json:"assignedCourier"`
	Status          string   `json:"status"`
	Date            string   `json:"date"`
	Price           float64  `json:"totalPrice"`
	TotalWeight     float64  `json:"totalWeight"`
	ProductIDs      []string `json:"products"`
	PickupAddress   string   `json:"pickup_address"`
	DeliveryAddress string   `json:"delivery_address"`
}

// CartItemRequest identifies the product being added or removed.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
}

// CheckoutRequest carries the addresses for a basket checkout.
type CheckoutRequest struct {
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
}

// CartItemResponse is a single basket member with catalog-joined price.
type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Weight    float64 `json:"weight"`
}

// CartResponse is a customer's basket with its derived total.
type CartResponse struct {
	ID       string             `json:"id"`
	Price    float64            `json:"price"`
	Products []CartItemResponse `json:"products"`
}

// respondError maps domain errors onto HTTP status codes: missing
// objects to 404, capability failures to 403, uniqueness and claim
// races to 409, validation failures to 400, everything else to 500.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
