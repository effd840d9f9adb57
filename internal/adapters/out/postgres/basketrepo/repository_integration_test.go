package basketrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/basketrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/basket"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BasketRepositoryIntegrationTestSuite provides integration tests for
// BasketRepository using PostgreSQL containers. Baskets join member price
// and weight from the catalog, so every test seeds products first.
type BasketRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	repository        *basketrepo.GormBasketRepository
	productRepository *productrepo.GormProductRepository
	tracker           *MockAggregateTracker
}

func (suite *BasketRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&productrepo.ProductDTO{},
		&basketrepo.BasketDTO{},
		&basketrepo.BasketItemDTO{},
	))
}

func (suite *BasketRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE basket_items, baskets, products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = basketrepo.NewGormBasketRepository(suite.db, suite.tracker)
	suite.productRepository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *BasketRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BasketRepositoryIntegrationTestSuite) TestAdd_EmptyBasket_RoundTrips() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	aggregate, err := basket.NewBasket(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal(customerID, retrieved.CustomerID())
	suite.Empty(retrieved.Items())
	suite.Zero(retrieved.Price())
}

func (suite *BasketRepositoryIntegrationTestSuite) TestGet_JoinsPriceFromCatalog() {
	ctx := context.Background()

	pizza := suite.seedProduct("Pizza", 12.50, 0.5)
	sushi := suite.seedProduct("Sushi", 22.00, 0.3)

	aggregate, err := basket.NewBasket(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.addProduct(aggregate, pizza)
	suite.addProduct(aggregate, sushi)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(retrieved.Items(), 2)
	suite.InDelta(34.50, retrieved.Price(), 0.001)
}

func (suite *BasketRepositoryIntegrationTestSuite) TestGet_ReflectsCatalogPriceChanges() {
	ctx := context.Background()

	pizza := suite.seedProduct("Pizza", 12.50, 0.5)

	aggregate, err := basket.NewBasket(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.addProduct(aggregate, pizza)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Reprice the listing; the basket sees the new price on next load.
	suite.Require().NoError(pizza.Update(pizza.Name(), 15.00, pizza.Details()))
	suite.Require().NoError(suite.productRepository.Update(ctx, pizza))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.InDelta(15.00, retrieved.Price(), 0.001)
}

func (suite *BasketRepositoryIntegrationTestSuite) TestUpdate_ReplacesMembershipRows() {
	ctx := context.Background()

	pizza := suite.seedProduct("Pizza", 12.50, 0.5)
	sushi := suite.seedProduct("Sushi", 22.00, 0.3)

	aggregate, err := basket.NewBasket(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.addProduct(aggregate, pizza)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.RemoveProduct(pizza.ID())
	suite.addProduct(aggregate, sushi)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(sushi.ID(), retrieved.Items()[0].ProductID())
}

func (suite *BasketRepositoryIntegrationTestSuite) TestUpdate_ClearedBasket_LeavesNoRows() {
	ctx := context.Background()

	pizza := suite.seedProduct("Pizza", 12.50, 0.5)

	aggregate, err := basket.NewBasket(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.addProduct(aggregate, pizza)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.Clear()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	var rows int64
	suite.Require().NoError(suite.db.Table("basket_items").Count(&rows).Error)
	suite.Zero(rows)
}

func (suite *BasketRepositoryIntegrationTestSuite) TestGetByCustomer_FindsOwnedBasket() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	aggregate, err := basket.NewBasket(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
}

func (suite *BasketRepositoryIntegrationTestSuite) TestGetByCustomer_Unknown_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByCustomer(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BasketRepositoryIntegrationTestSuite) seedProduct(name string, price, weight float64) *product.Product {
	listing, err := product.NewProduct(
		kernel.NewUUID(), name, "Test listing", weight, price, "food", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepository.Add(context.Background(), listing))
	return listing
}

func (suite *BasketRepositoryIntegrationTestSuite) addProduct(aggregate *basket.Basket, listing *product.Product) {
	item, err := basket.NewItem(listing.ID(), listing.Price(), listing.Weight())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddProduct(item))
}

func TestBasketRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BasketRepositoryIntegrationTestSuite))
}
