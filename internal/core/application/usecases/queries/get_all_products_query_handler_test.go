package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllProductsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	handler    queries.GetAllProductsQueryHandler
}

func (suite *GetAllProductsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.repository = productrepo.NewGormProductRepository(db, noopTracker{})
	suite.handler = queries.NewGetAllProductsQueryHandler(db)
}

func (suite *GetAllProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetAllProductsQueryHandlerTestSuite) TestHandle_EmptyCatalog_ReturnsEmptySlice() {
	query := queries.NewGetAllProductsQuery(false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllProductsQueryHandlerTestSuite) TestHandle_FullCatalog_ReturnsAllOrderedByName() {
	ctx := context.Background()

	approved := suite.seedProduct("Pizza", product.StatusApproved)
	pending := suite.seedProduct("Burger", product.StatusPending)
	rejected := suite.seedProduct("Sushi", product.StatusRejected)

	query := queries.NewGetAllProductsQuery(false)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Burger", result[0].Name)
	suite.Equal(pending.ID(), result[0].ID)
	suite.Equal("pending", result[0].Status)

	suite.Equal("Pizza", result[1].Name)
	suite.Equal(approved.ID(), result[1].ID)
	suite.Equal("approved", result[1].Status)
	suite.Equal(approved.OwnerID(), result[1].OwnerID)
	suite.Equal(approved.Price(), result[1].Price)

	suite.Equal("Sushi", result[2].Name)
	suite.Equal(rejected.ID(), result[2].ID)
	suite.Equal("rejected", result[2].Status)
}

func (suite *GetAllProductsQueryHandlerTestSuite) TestHandle_AvailableOnly_SkipsUnapproved() {
	ctx := context.Background()

	approved := suite.seedProduct("Pizza", product.StatusApproved)
	suite.seedProduct("Burger", product.StatusPending)
	suite.seedProduct("Sushi", product.StatusRejected)

	query := queries.NewGetAllProductsQuery(true)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(approved.ID(), result[0].ID)
	suite.Equal("approved", result[0].Status)
}

func (suite *GetAllProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllProductsQuery constructor")
}

func (suite *GetAllProductsQueryHandlerTestSuite) seedProduct(name string, status product.Status) *product.Product {
	listing, err := product.NewProduct(
		kernel.NewUUID(), name, "Test listing", 0.5, 12.90, "food", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(listing.SetAvailability(status))
	suite.Require().NoError(suite.repository.Add(context.Background(), listing))
	return listing
}

func TestGetAllProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllProductsQueryHandlerTestSuite))
}
