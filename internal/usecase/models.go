package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemReq is one submitted line item. The unit price is the price
// at checkout as seen by the caller; it is stored verbatim and used
// for the total, not re-read from the catalog.
type OrderItemReq struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

type CreateOrderReq struct {
	BuyerID       int64
	AddressID     int64
	Items         []OrderItemReq
	PaymentMethod string
}

func NewCreateOrderReq(buyerID, addressID int64, items []OrderItemReq, paymentMethod string) *CreateOrderReq {
	return &CreateOrderReq{
		BuyerID:       buyerID,
		AddressID:     addressID,
		Items:         items,
		PaymentMethod: paymentMethod,
	}
}

type CreateOrderRes struct {
	OrderID   int64
	PaymentID int64
}

// ProductFilter narrows the catalog listing. Nil fields are ignored.
type ProductFilter struct {
	CategoryID *int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Limit      int
}

type ProductSummary struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	StoreName   string
	Category    string
}

type ProductDetail struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	StoreName   string
	SellerName  string
	SellerEmail string
}

type CategoryInfo struct {
	ID           int64
	Name         string
	Description  string
	ProductCount int64
}

// BuyerOrder is one row of a buyer's order history.
type BuyerOrder struct {
	OrderID       int64
	Date          time.Time
	Status        string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	Products      string
}

type TopProduct struct {
	ProductName  string
	StoreName    string
	QuantitySold int64
	TotalRevenue decimal.Decimal
	OrderCount   int64
}

type SellerRevenue struct {
	StoreName  string
	Revenue    decimal.Decimal
	OrderCount int64
}

type MonthlyRevenue struct {
	Month      int
	OrderCount int64
	Revenue    decimal.Decimal
}

type PaymentMethodTotal struct {
	Method        string
	ApprovedCount int64
	TotalAmount   decimal.Decimal
}

type VIPCustomer struct {
	BuyerName     string
	CPF           string
	OrderCount    int64
	TotalSpent    decimal.Decimal
	AvgOrderValue decimal.Decimal
}

// StockAlert is one low-stock report row. Status is derived from the
// stock level, not stored.
type StockAlert struct {
	ProductName string
	StoreName   string
	Stock       int
	Price       decimal.Decimal
	TotalSold   int64
	Status      string
}

// Dashboard bundles the three sales aggregations served together.
type Dashboard struct {
	TopSellers     []SellerRevenue
	MonthlyRevenue []MonthlyRevenue
	PaymentMethods []PaymentMethodTotal
}
