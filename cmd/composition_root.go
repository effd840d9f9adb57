package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.SignUpUoWFactory = FuncSignUpUoWFactory(func() commands.SignUpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAccountCommandHandler() commands.UpdateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreatePublishProductCommandHandler() commands.PublishProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishProductCommandHandler(f)
}

func (c *CompositionRoot) CreateEditProductCommandHandler() commands.EditProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditProductCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveProductCommandHandler() commands.ApproveProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveProductCommandHandler(f)
}

func (c *CompositionRoot) CreateRetractProductCommandHandler() commands.RetractProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetractProductCommandHandler(f)
}

func (c *CompositionRoot) CreateAddToBasketCommandHandler() commands.AddToBasketCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToBasketCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveFromBasketCommandHandler() commands.RemoveFromBasketCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFromBasketCommandHandler(f)
}

func (c *CompositionRoot) CreateClearBasketCommandHandler() commands.ClearBasketCommandHandler {
	var f commands.BasketUoWFactory = FuncBasketUoWFactory(func() commands.BasketUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearBasketCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCouriersCommandHandler() commands.AssignCouriersCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCouriersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountByEmailQueryHandler() queries.GetAccountByEmailQueryHandler {
	return queries.NewGetAccountByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAccountsQueryHandler() queries.GetAllAccountsQueryHandler {
	return queries.NewGetAllAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBasketQueryHandler() queries.GetBasketQueryHandler {
	return queries.NewGetBasketQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncSignUpUoWFactory func() commands.SignUpUoW

func (f FuncSignUpUoWFactory) Create() commands.SignUpUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncBasketUoWFactory func() commands.BasketUoW

func (f FuncBasketUoWFactory) Create() commands.BasketUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
