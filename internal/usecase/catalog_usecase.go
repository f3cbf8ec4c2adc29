package usecase

import (
	"context"

	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

// Catalog listing returns at most this many rows unless the caller
// asks for fewer.
const DefaultProductLimit = 50

// CatalogUseCase serves the single-statement read paths: products,
// categories, buyers and addresses.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	buyerRepo    BuyerRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	buyerRepo BuyerRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		buyerRepo:    buyerRepo,
		logger:       logger,
	}
}

func (c *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductSummary, error) {
	const op = "CatalogUseCase.ListProducts"

	if filter.Limit <= 0 {
		filter.Limit = DefaultProductLimit
	}

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CatalogUseCase) GetBuyerByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	const op = "CatalogUseCase.GetBuyerByEmail"

	buyer, err := c.buyerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return buyer, nil
}

func (c *CatalogUseCase) ListBuyerAddresses(ctx context.Context, buyerID int64) ([]domain.Address, error) {
	const op = "CatalogUseCase.ListBuyerAddresses"

	addresses, err := c.buyerRepo.ListAddresses(ctx, buyerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return addresses, nil
}
