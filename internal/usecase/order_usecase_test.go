package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

type fakeOrderRepo struct {
	orders  []BuyerOrder
	listErr error
}

func (f *fakeOrderRepo) CreatePayment(ctx context.Context, payment *domain.Payment) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeOrderRepo) AddItem(ctx context.Context, item *domain.OrderItem) error {
	return errors.New("not implemented")
}

func (f *fakeOrderRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]BuyerOrder, error) {
	return f.orders, f.listErr
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validReq() *CreateOrderReq {
	return NewCreateOrderReq(1, 1, []OrderItemReq{
		{ProductID: 1, Quantity: 2, UnitPrice: price("1299.99")},
	}, domain.PaymentMethodPix)
}

func TestValidateOrder(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validateOrder(validReq()))
	})

	t.Run("no items", func(t *testing.T) {
		req := validReq()
		req.Items = nil
		assert.ErrorIs(t, validateOrder(req), e.ErrNoItems)
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := validReq()
		req.Items[0].Quantity = 0
		assert.ErrorIs(t, validateOrder(req), e.ErrInvalidQuantity)
	})

	t.Run("negative quantity", func(t *testing.T) {
		req := validReq()
		req.Items[0].Quantity = -1
		assert.ErrorIs(t, validateOrder(req), e.ErrInvalidQuantity)
	})

	t.Run("negative unit price", func(t *testing.T) {
		req := validReq()
		req.Items[0].UnitPrice = price("-0.01")
		assert.ErrorIs(t, validateOrder(req), e.ErrInvalidUnitPrice)
	})

	t.Run("zero unit price allowed", func(t *testing.T) {
		req := validReq()
		req.Items[0].UnitPrice = decimal.Zero
		require.NoError(t, validateOrder(req))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		req := validReq()
		req.PaymentMethod = "cheque"
		assert.ErrorIs(t, validateOrder(req), e.ErrUnknownPayment)
	})
}

func TestOrderTotal(t *testing.T) {
	t.Run("exact decimal sum", func(t *testing.T) {
		total := orderTotal([]OrderItemReq{
			{ProductID: 1, Quantity: 2, UnitPrice: price("1299.99")},
		})
		assert.True(t, total.Equal(price("2599.98")), "got %s", total)
	})

	t.Run("multiple items", func(t *testing.T) {
		total := orderTotal([]OrderItemReq{
			{ProductID: 1, Quantity: 3, UnitPrice: price("10.10")},
			{ProductID: 2, Quantity: 1, UnitPrice: price("0.99")},
		})
		assert.True(t, total.Equal(price("31.29")), "got %s", total)
	})

	t.Run("no items is zero", func(t *testing.T) {
		assert.True(t, orderTotal(nil).IsZero())
	})
}

func TestCreateOrderRejectsInvalidInput(t *testing.T) {
	uc := NewOrderUC(&fakeOrderRepo{}, nil, nil, nil, logger.NewSlogLogger())

	req := validReq()
	req.Items = nil

	res, err := uc.CreateOrder(context.Background(), req)
	require.Nil(t, res)
	// Validation fails before any transaction is opened, so the nil
	// pool is never touched.
	assert.ErrorIs(t, err, e.ErrNoItems)
}

func TestListBuyerOrders(t *testing.T) {
	orders := []BuyerOrder{
		{OrderID: 2, Status: domain.OrderStatusProcessing, Amount: price("59.90"), Products: "Caneca"},
		{OrderID: 1, Status: domain.OrderStatusDelivered, Amount: price("2599.98"), Products: "Notebook, Mouse"},
	}

	uc := NewOrderUC(&fakeOrderRepo{orders: orders}, nil, nil, nil, logger.NewSlogLogger())

	got, err := uc.ListBuyerOrders(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestListBuyerOrdersError(t *testing.T) {
	uc := NewOrderUC(&fakeOrderRepo{listErr: errors.New("boom")}, nil, nil, nil, logger.NewSlogLogger())

	_, err := uc.ListBuyerOrders(context.Background(), 1)
	require.Error(t, err)
}
