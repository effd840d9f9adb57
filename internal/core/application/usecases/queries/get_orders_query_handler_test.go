package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	handler    queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repository = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.handler = queries.NewGetOrdersQueryHandler(db)
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_AllOrders_AggregatesLedgerTotals() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	aggregate := suite.seedOrder(kernel.NewUUID(), []float64{12.50, 22.00}, productID)

	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal(aggregate.ID(), result[0].ID)
	suite.Equal(aggregate.PurchaserID(), result[0].CustomerID)
	suite.Nil(result[0].CourierID)
	suite.Equal("pending", result[0].Status)
	suite.Len(result[0].ProductIDs, 2)
	suite.InDelta(34.50, result[0].Price, 0.001)
	suite.InDelta(1.0, result[0].TotalWeight, 0.001)
	suite.Equal("1 Pickup Lane", result[0].PickupAddress)
	suite.Equal("2 Delivery Road", result[0].DeliveryAddress)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ForCustomer_FiltersByPurchaser() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	mine := suite.seedOrder(customerID, []float64{12.50}, kernel.NewUUID())
	suite.seedOrder(kernel.NewUUID(), []float64{22.00}, kernel.NewUUID())

	query, err := queries.NewGetOrdersForCustomerQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID(), result[0].ID)
	suite.Equal(customerID, result[0].CustomerID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ClaimedOrder_IncludesCourier() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	aggregate := suite.seedOrder(kernel.NewUUID(), []float64{12.50}, kernel.NewUUID())
	suite.Require().NoError(aggregate.Claim(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().NotNil(result[0].CourierID)
	suite.Equal(courierID, *result[0].CourierID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(
	purchaserID kernel.UUID,
	prices []float64,
	productID kernel.UUID,
) *order.Order {
	items := make([]order.Item, 0, len(prices))
	for _, price := range prices {
		item, err := order.NewItem(productID, price, 0.5)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), purchaserID, items,
		"1 Pickup Lane", "2 Delivery Road",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
