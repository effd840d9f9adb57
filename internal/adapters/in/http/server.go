package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	signUpHandler            commands.SignUpCommandHandler
	updateAccountHandler     commands.UpdateAccountCommandHandler
	publishProductHandler    commands.PublishProductCommandHandler
	editProductHandler       commands.EditProductCommandHandler
	approveProductHandler    commands.ApproveProductCommandHandler
	retractProductHandler    commands.RetractProductCommandHandler
	addToBasketHandler       commands.AddToBasketCommandHandler
	removeFromBasketHandler  commands.RemoveFromBasketCommandHandler
	clearBasketHandler       commands.ClearBasketCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	claimOrderHandler        commands.ClaimOrderCommandHandler

	// Query handlers
	getAccountHandler        queries.GetAccountQueryHandler
	getAccountByEmailHandler queries.GetAccountByEmailQueryHandler
	getAllAccountsHandler    queries.GetAllAccountsQueryHandler
	getAllProductsHandler    queries.GetAllProductsQueryHandler
	getBasketHandler         queries.GetBasketQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	signUpHandler commands.SignUpCommandHandler,
	updateAccountHandler commands.UpdateAccountCommandHandler,
	publishProductHandler commands.PublishProductCommandHandler,
	editProductHandler commands.EditProductCommandHandler,
	approveProductHandler commands.ApproveProductCommandHandler,
	retractProductHandler commands.RetractProductCommandHandler,
	addToBasketHandler commands.AddToBasketCommandHandler,
	removeFromBasketHandler commands.RemoveFromBasketCommandHandler,
	clearBasketHandler commands.ClearBasketCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	getAccountHandler queries.GetAccountQueryHandler,
	getAccountByEmailHandler queries.GetAccountByEmailQueryHandler,
	getAllAccountsHandler queries.GetAllAccountsQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	getBasketHandler queries.GetBasketQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		signUpHandler:            signUpHandler,
		updateAccountHandler:     updateAccountHandler,
		publishProductHandler:    publishProductHandler,
		editProductHandler:       editProductHandler,
		approveProductHandler:    approveProductHandler,
		retractProductHandler:    retractProductHandler,
		addToBasketHandler:       addToBasketHandler,
		removeFromBasketHandler:  removeFromBasketHandler,
		clearBasketHandler:       clearBasketHandler,
		checkoutHandler:          checkoutHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		claimOrderHandler:        claimOrderHandler,
		getAccountHandler:        getAccountHandler,
		getAccountByEmailHandler: getAccountByEmailHandler,
		getAllAccountsHandler:    getAllAccountsHandler,
		getAllProductsHandler:    getAllProductsHandler,
		getBasketHandler:         getBasketHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/login", s.Login)

	api.GET("/users", s.GetAccounts)
	api.PUT("/users/:id", s.UpdateAccount)

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)
	api.GET("/customers/:id/cart", s.GetCart)
	api.POST("/customers/:id/cart/add", s.AddToCart)
	api.POST("/customers/:id/cart/remove", s.RemoveFromCart)
	api.POST("/customers/:id/cart/clear", s.ClearCart)
	api.POST("/customers/:id/cart/checkout", s.Checkout)

	api.POST("/providers", s.RegisterProvider)
	api.GET("/providers", s.GetProviders)
	api.PUT("/providers/:id", s.UpdateAccount)

	api.POST("/couriers", s.RegisterCourier)
	api.PUT("/couriers/:id/area", s.UpdateCourierArea)

	api.POST("/admins", s.RegisterAdmin)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.PublishProduct)
	api.PUT("/products/:id", s.EditProduct)
	api.PUT("/products/:id/approve", s.ApproveProduct)
	api.DELETE("/products/:id", s.RetractProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
}

// Login handles POST /api/login - checks credentials against the account
// registered under the presented email.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAccountByEmailQuery(request.Email)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.getAccountByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil || found.Credential != request.Password {
		// Unknown email and wrong password are indistinguishable on purpose.
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	return ctx.JSON(http.StatusOK, accountToResponse(
		found.ID, found.Role, found.Name, found.Email, found.AccountProfile))
}

// GetAccounts handles GET /api/users - lists every registered account.
func (s *Server) GetAccounts(ctx echo.Context) error {
	accounts, err := s.getAllAccountsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllAccountsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AccountResponse, 0, len(accounts))
	for _, found := range accounts {
		response = append(response, accountToResponse(
			found.ID, found.Role, found.Name, found.Email, found.AccountProfile))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAccount handles PUT /api/users/:id and PUT /api/providers/:id -
// applies the submitted fields to the account's profile.
func (s *Server) UpdateAccount(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var fields map[string]any
	if bindErr := ctx.Bind(&fields); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	cmd, err := commands.NewUpdateAccountCommand(accountID, fields)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.updateAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterCustomer handles POST /api/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request SignUpRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	return s.signUp(ctx, account.RoleCustomer, request, map[string]any{
		"address": request.Address,
		"phone":   request.Phone,
	})
}

// RegisterProvider handles POST /api/providers.
func (s *Server) RegisterProvider(ctx echo.Context) error {
	var request SignUpRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	return s.signUp(ctx, account.RoleServiceOfferor, request, map[string]any{
		"service_type": request.Type,
		"area":         request.Area,
	})
}

// RegisterCourier handles POST /api/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var request SignUpRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	return s.signUp(ctx, account.RoleCourier, request, map[string]any{
		"status": defaultStatus(request.Status),
		"salary": request.Salary,
		"area":   request.Area,
	})
}

// RegisterAdmin handles POST /api/admins.
func (s *Server) RegisterAdmin(ctx echo.Context) error {
	var request SignUpRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	return s.signUp(ctx, account.RoleAdmin, request, map[string]any{
		"status": defaultStatus(request.Status),
	})
}

func (s *Server) signUp(
	ctx echo.Context,
	role account.Role,
	request SignUpRequest,
	extras map[string]any,
) error {
	accountID := kernel.NewUUID()

	cmd, err := commands.NewSignUpCommand(
		accountID, role, request.Name, request.Email, request.Password, extras)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.signUpHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: accountID.String()})
}

// GetCustomer handles GET /api/customers/:id - looks up a single account.
func (s *Server) GetCustomer(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAccountQuery(accountID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.getAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, accountToResponse(
		found.ID, found.Role, found.Name, found.Email, found.AccountProfile))
}

// GetProviders handles GET /api/providers - lists service offeror accounts.
func (s *Server) GetProviders(ctx echo.Context) error {
	accounts, err := s.getAllAccountsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllAccountsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AccountResponse, 0)
	for _, found := range accounts {
		if found.Role != account.RoleServiceOfferor.String() {
			continue
		}

		response = append(response, accountToResponse(
			found.ID, found.Role, found.Name, found.Email, found.AccountProfile))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCourierArea handles PUT /api/couriers/:id/area.
func (s *Server) UpdateCourierArea(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request struct {
		Area string `json:"area"`
	}
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	cmd, err := commands.NewUpdateAccountCommand(courierID, map[string]any{"area": request.Area})
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.updateAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetProducts handles GET /api/products - lists the catalog. With
// ?available=true only approved listings are returned.
func (s *Server) GetProducts(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	products, err := s.getAllProductsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllProductsQuery(availableOnly))
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, listing := range products {
		response = append(response, ProductResponse{
			ID:       listing.ID.String(),
			Name:     listing.Name,
			Details:  listing.Details,
			Weight:   listing.Weight,
			Price:    listing.Price,
			Category: listing.Category,
			Status:   listing.Status,
			OwnerID:  listing.OwnerID.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// PublishProduct handles POST /api/products - submits a listing for approval.
func (s *Server) PublishProduct(ctx echo.Context) error {
	var request NewProductRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	ownerID, err := kernel.UUIDFromString(request.ProviderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewPublishProductCommand(
		productID, ownerID,
		request.Name, request.Details,
		request.Weight, request.Price,
		request.Category)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.publishProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: productID.String()})
}

// EditProduct handles PUT /api/products/:id - lets the owner revise a listing.
func (s *Server) EditProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request EditProductRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	actorID, err := kernel.UUIDFromString(request.ProviderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewEditProductCommand(
		productID, actorID, request.Name, request.Price, request.Details)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.editProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ApproveProduct handles PUT /api/products/:id/approve - records an admin's
// decision on a pending listing.
func (s *Server) ApproveProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request ApproveProductRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	adminID, err := kernel.UUIDFromString(request.AdminID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	decision, err := product.StatusFromString(request.Status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewApproveProductCommand(productID, adminID, decision)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.approveProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RetractProduct handles DELETE /api/products/:id - removes a listing and
// sweeps it out of every basket.
func (s *Server) RetractProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request RetractProductRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	actorID, err := kernel.UUIDFromString(request.ProviderID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRetractProductCommand(productID, actorID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.retractProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrders handles GET /api/orders - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// GetCustomerOrders handles GET /api/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersForCustomerQuery(customerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// CreateOrder handles POST /api/orders - places an order directly from a
// product selection.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, err)
	}

	purchaserID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	productIDs := make([]kernel.UUID, 0, len(request.ProductIDs))
	for _, raw := range request.ProductIDs {
		productID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return respondBadRequest(ctx, parseErr)
		}

		productIDs = append(productIDs, productID)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, purchaserID, productIDs,
		request.PickupAddress, request.DeliveryAddress)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/orders/:id - a status transition when the
// body carries a status, a courier claim when it carries a courier id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request UpdateOrderRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	if request.CourierID == "" && request.Status == "" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "request must carry a status or a courier_id",
		})
	}

	if request.CourierID != "" {
		courierID, parseErr := kernel.UUIDFromString(request.CourierID)
		if parseErr != nil {
			return respondBadRequest(ctx, parseErr)
		}

		cmd, cmdErr := commands.NewClaimOrderCommand(orderID, courierID)
		if cmdErr != nil {
			return respondBadRequest(ctx, cmdErr)
		}

		if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return respondError(ctx, handleErr)
		}
	}

	if request.Status != "" {
		status, parseErr := order.StatusFromString(request.Status)
		if parseErr != nil {
			return respondBadRequest(ctx, parseErr)
		}

		cmd, cmdErr := commands.NewUpdateOrderStatusCommand(orderID, status)
		if cmdErr != nil {
			return respondBadRequest(ctx, cmdErr)
		}

		if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
			return respondError(ctx, handleErr)
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// GetCart handles GET /api/customers/:id/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetBasketQuery(customerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	basket, err := s.getBasketHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]CartItemResponse, 0, len(basket.Items))
	for _, item := range basket.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Weight:    item.Weight,
		})
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		ID:       basket.ID.String(),
		Price:    basket.Price,
		Products: items,
	})
}

// AddToCart handles POST /api/customers/:id/cart/add.
func (s *Server) AddToCart(ctx echo.Context) error {
	customerID, productID, err := cartItemIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAddToBasketCommand(customerID, productID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.addToBasketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveFromCart handles POST /api/customers/:id/cart/remove.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	customerID, productID, err := cartItemIDs(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveFromBasketCommand(customerID, productID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.removeFromBasketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ClearCart handles POST /api/customers/:id/cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewClearBasketCommand(customerID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.clearBasketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// Checkout handles POST /api/customers/:id/cart/checkout - turns the basket
// into an order and empties it.
func (s *Server) Checkout(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var request CheckoutRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return respondBadRequest(ctx, bindErr)
	}

	cmd, err := commands.NewCheckoutCommand(
		customerID, request.PickupAddress, request.DeliveryAddress)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

func accountToResponse(
	id kernel.UUID, role string, name string, email string,
	profile queries.AccountProfile,
) AccountResponse {
	response := AccountResponse{
		ID:          id.String(),
		Role:        role,
		Name:        name,
		Email:       email,
		Address:     profile.Address,
		Phone:       profile.Phone,
		Status:      profile.Status,
		Area:        profile.Area,
		ServiceType: profile.ServiceType,
	}
	if role == account.RoleCourier.String() {
		salary := profile.Salary
		response.Salary = &salary
	}

	return response
}

func cartItemIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var request CartItemRequest
	if err = ctx.Bind(&request); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return customerID, productID, nil
}

func ordersToResponse(orders []queries.GetOrdersQueryResponse) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))
	for _, found := range orders {
		var courierID *string
		if found.CourierID != nil {
			id := found.CourierID.String()
			courierID = &id
		}

		productIDs := make([]string, 0, len(found.ProductIDs))
		for _, productID := range found.ProductIDs {
			productIDs = append(productIDs, productID.String())
		}

		response = append(response, OrderResponse{
			ID:              found.ID.String(),
			CustomerID:      found.CustomerID.String(),
			CourierID:       courierID,
			Status:          found.Status,
			Date:            found.CreatedAt.Format("2006-01-02"),
			Price:           found.Price,
			TotalWeight:     found.TotalWeight,
			ProductIDs:      productIDs,
			PickupAddress:   found.PickupAddress,
			DeliveryAddress: found.DeliveryAddress,
		})
	}

	return response
}

// defaultStatus falls back to "active" when registration omits a status,
// matching how seeded accounts are created.
func defaultStatus(status string) string {
	if status == "" {
		return "active"
	}

	return status
}
