package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

// OrderUseCase executes the order creation use case as a single unit
// of work: payment, order, line items, stock decrements and the outbox
// event either all commit or none do.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// CreateOrder places an order for the given buyer and address.
//
// The total is computed from the caller-supplied unit prices (price at
// checkout); stock is decremented unconditionally, so it can go
// negative under concurrent load. Any failed statement rolls the whole
// transaction back and surfaces as ErrOrderRejected with the
// underlying reason.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*CreateOrderRes, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	total := orderTotal(req.Items)
	today := time.Now()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	paymentID, err := o.orderRepo.CreatePayment(ctx, &domain.Payment{
		Method: req.PaymentMethod,
		Date:   today,
		Amount: total,
		Status: domain.PaymentStatusProcessing,
	})
	if err != nil {
		return nil, rejected(op, err)
	}

	orderID, err := o.orderRepo.CreateOrder(ctx, &domain.Order{
		Date:      today,
		Status:    domain.OrderStatusProcessing,
		BuyerID:   req.BuyerID,
		AddressID: req.AddressID,
		PaymentID: paymentID,
	})
	if err != nil {
		return nil, rejected(op, err)
	}

	for _, item := range req.Items {
		if err = o.orderRepo.AddItem(ctx, &domain.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}); err != nil {
			return nil, rejected(op, err)
		}

		if err = o.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, rejected(op, err)
		}
	}

	if err = o.writeOrderEvent(ctx, orderID, paymentID, req.BuyerID, total); err != nil {
		return nil, rejected(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, rejected(op, err)
	}

	o.logger.Infof("order %d created for buyer %d, payment %d, total %s",
		orderID, req.BuyerID, paymentID, total.String())

	return &CreateOrderRes{OrderID: orderID, PaymentID: paymentID}, nil
}

func (o *OrderUseCase) ListBuyerOrders(ctx context.Context, buyerID int64) ([]BuyerOrder, error) {
	const op = "OrderUseCase.ListBuyerOrders"

	orders, err := o.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

type orderEventPayload struct {
	EventID   string          `json:"event_id"`
	OrderID   int64           `json:"order_id"`
	PaymentID int64           `json:"payment_id"`
	BuyerID   int64           `json:"buyer_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// writeOrderEvent stores the order_created event in the outbox, inside
// the same transaction as the order itself.
func (o *OrderUseCase) writeOrderEvent(ctx context.Context, orderID, paymentID, buyerID int64, total decimal.Decimal) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(orderEventPayload{
		EventID:   eventID,
		OrderID:   orderID,
		PaymentID: paymentID,
		BuyerID:   buyerID,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: OrderCreated,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

func validateOrder(req *CreateOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrNoItems
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return e.ErrInvalidUnitPrice
		}
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return e.ErrUnknownPayment
	}
	return nil
}

// orderTotal sums quantity × unit price over the submitted items.
// Decimal arithmetic keeps the stored payment amount exact.
func orderTotal(items []OrderItemReq) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// rejected converts a failed write step into the business failure the
// delivery layer maps to a 400, keeping the underlying reason.
func rejected(op string, err error) error {
	return e.Wrap(op, fmt.Errorf("%w: %v", e.ErrOrderRejected, err))
}
