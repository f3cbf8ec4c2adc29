package usecase

import (
	"context"

	"github.com/viniciuslidington/marketplace-database/internal/domain"
)

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error)
	ListBuyerOrders(ctx context.Context, buyerID int64) ([]BuyerOrder, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductSummary, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
	GetBuyerByEmail(ctx context.Context, email string) (*domain.Buyer, error)
	ListBuyerAddresses(ctx context.Context, buyerID int64) ([]domain.Address, error)
}

type ReportUC interface {
	TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	VIPCustomers(ctx context.Context, limit int) ([]VIPCustomer, error)
	CriticalStock(ctx context.Context, threshold int) ([]StockAlert, error)
}
