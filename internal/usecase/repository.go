package usecase

import (
	"context"

	"github.com/viniciuslidington/marketplace-database/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]ProductSummary, error)
	GetByID(ctx context.Context, id int64) (*ProductDetail, error)
	// DecrementStock runs inside the order transaction taken from ctx.
	DecrementStock(ctx context.Context, productID int64, quantity int) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]CategoryInfo, error)
}

type BuyerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Buyer, error)
	ListAddresses(ctx context.Context, buyerID int64) ([]domain.Address, error)
}

// OrderRepository persists orders. The three Create methods run inside
// the order transaction taken from ctx; ListByBuyer reads committed data.
type OrderRepository interface {
	CreatePayment(ctx context.Context, payment *domain.Payment) (int64, error)
	CreateOrder(ctx context.Context, order *domain.Order) (int64, error)
	AddItem(ctx context.Context, item *domain.OrderItem) error
	ListByBuyer(ctx context.Context, buyerID int64) ([]BuyerOrder, error)
}

type ReportRepository interface {
	TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error)
	SellerLeaderboard(ctx context.Context) ([]SellerRevenue, error)
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenue, error)
	PaymentMethodSummary(ctx context.Context) ([]PaymentMethodTotal, error)
	VIPCustomers(ctx context.Context, limit int) ([]VIPCustomer, error)
	LowStock(ctx context.Context, threshold int) ([]StockAlert, error)
}

type OutboxRepository interface {
	// Create runs inside the order transaction taken from ctx.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
