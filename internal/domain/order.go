package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a buyer's purchase, linked to exactly one payment and one
// or more line items.
type Order struct {
	ID        int64
	Date      time.Time
	Status    string
	BuyerID   int64
	AddressID int64
	PaymentID int64
}

// OrderItem is one product/quantity/price tuple within an order. The
// unit price is snapshotted at purchase time and never re-read from
// the product.
type OrderItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

const (
	OrderStatusProcessing = "processando"
	OrderStatusShipped    = "enviado"
	OrderStatusDelivered  = "entregue"
)
