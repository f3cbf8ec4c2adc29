package pgdb

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

// placeOrder creates an order through the use case and returns its id.
func placeOrder(t *testing.T, pool *pgxpool.Pool, f fixture, items []usecase.OrderItemReq) int64 {
	t.Helper()

	uc := usecase.NewOrderUC(
		NewOrderRepo(pool),
		NewProductRepo(pool),
		NewOutboxEventRepo(pool),
		pool,
		logger.NewSlogLogger(),
	)

	res, err := uc.CreateOrder(context.Background(), usecase.NewCreateOrderReq(
		f.buyerID, f.addressID, items, domain.PaymentMethodPix,
	))
	require.NoError(t, err)

	return res.OrderID
}

// markDelivered moves an order and its payment to the terminal states
// the reports aggregate over.
func markDelivered(t *testing.T, pool *pgxpool.Pool, orderID int64) {
	t.Helper()
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `UPDATE Pedido SET Status = $1 WHERE ID_Pedido = $2`, domain.OrderStatusDelivered, orderID); err != nil {
		t.Fatalf("mark order delivered: %v", err)
	}
	if _, err := pool.Exec(ctx, `
		UPDATE Pagamento SET Status = $1
		WHERE ID_Pagamento = (SELECT ID_Pagamento FROM Pedido WHERE ID_Pedido = $2)
	`, domain.PaymentStatusApproved, orderID); err != nil {
		t.Fatalf("mark payment approved: %v", err)
	}
}

func TestTopSellingProductsCountsDeliveredOnly(t *testing.T) {
	pool := setupTestDB(t)
	f := seedMarketplace(t, pool)
	notebook := seedProduct(t, pool, f.sellerID, "Notebook", "1299.99", 100)
	mouse := seedProduct(t, pool, f.sellerID, "Mouse", "59.90", 100)
	cable := seedProduct(t, pool, f.sellerID, "Cabo USB", "19.90", 100)

	delivered := placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: notebook, Quantity: 2, UnitPrice: decimal.RequireFromString("1299.99")},
		{ProductID: mouse, Quantity: 5, UnitPrice: decimal.RequireFromString("59.90")},
	})
	markDelivered(t, pool, delivered)

	// Still processing: must not show up in the ranking.
	placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: cable, Quantity: 50, UnitPrice: decimal.RequireFromString("19.90")},
	})

	repo := NewReportRepo(pool)

	top, err := repo.TopSellingProducts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Mouse", top[0].ProductName)
	assert.Equal(t, int64(5), top[0].QuantitySold)
	assert.Equal(t, "Notebook", top[1].ProductName)
	assert.True(t, top[1].TotalRevenue.Equal(decimal.RequireFromString("2599.98")), "got %s", top[1].TotalRevenue)

	// The limit truncates the ranking.
	top, err = repo.TopSellingProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Mouse", top[0].ProductName)
}

func TestLowStockOrderingAndTotals(t *testing.T) {
	pool := setupTestDB(t)
	f := seedMarketplace(t, pool)
	seedProduct(t, pool, f.sellerID, "Monitor", "899.00", 40)
	seedProduct(t, pool, f.sellerID, "Teclado", "149.00", 25)
	cable := seedProduct(t, pool, f.sellerID, "Cabo USB", "19.90", 5)
	seedProduct(t, pool, f.sellerID, "Webcam", "249.00", 0)

	orderID := placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: cable, Quantity: 3, UnitPrice: decimal.RequireFromString("19.90")},
	})
	markDelivered(t, pool, orderID)

	uc := usecase.NewReportUC(NewReportRepo(pool), logger.NewSlogLogger())

	alerts, err := uc.CriticalStock(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, alerts, 3, "Monitor at 40 is above the threshold")

	// Lowest stock first. Cabo USB sold 3 units after the decrement.
	assert.Equal(t, "Webcam", alerts[0].ProductName)
	assert.Equal(t, domain.StockStatusCritical, alerts[0].Status)
	assert.Equal(t, int64(0), alerts[0].TotalSold)

	assert.Equal(t, "Cabo USB", alerts[1].ProductName)
	assert.Equal(t, 2, alerts[1].Stock)
	assert.Equal(t, domain.StockStatusCritical, alerts[1].Status)
	assert.Equal(t, int64(3), alerts[1].TotalSold)

	assert.Equal(t, "Teclado", alerts[2].ProductName)
	assert.Equal(t, domain.StockStatusLow, alerts[2].Status)
}

func TestVIPCustomersAggregatesDeliveredSpend(t *testing.T) {
	pool := setupTestDB(t)
	f := seedMarketplace(t, pool)
	notebook := seedProduct(t, pool, f.sellerID, "Notebook", "1299.99", 100)

	first := placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: notebook, Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99")},
	})
	second := placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: notebook, Quantity: 2, UnitPrice: decimal.RequireFromString("1299.99")},
	})
	markDelivered(t, pool, first)
	markDelivered(t, pool, second)

	vips, err := NewReportRepo(pool).VIPCustomers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, vips, 1)

	assert.Equal(t, "Maria Silva", vips[0].BuyerName)
	assert.Equal(t, int64(2), vips[0].OrderCount)
	assert.True(t, vips[0].TotalSpent.Equal(decimal.RequireFromString("3899.97")), "got %s", vips[0].TotalSpent)
}

func TestMonthlyRevenueDeliveredOnly(t *testing.T) {
	pool := setupTestDB(t)
	f := seedMarketplace(t, pool)
	notebook := seedProduct(t, pool, f.sellerID, "Notebook", "1299.99", 100)

	delivered := placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: notebook, Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99")},
	})
	markDelivered(t, pool, delivered)

	// Still processing: excluded from revenue.
	placeOrder(t, pool, f, []usecase.OrderItemReq{
		{ProductID: notebook, Quantity: 1, UnitPrice: decimal.RequireFromString("1299.99")},
	})

	monthly, err := NewReportRepo(pool).MonthlyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, int64(1), monthly[0].OrderCount)
	assert.True(t, monthly[0].Revenue.Equal(decimal.RequireFromString("1299.99")), "got %s", monthly[0].Revenue)
}
