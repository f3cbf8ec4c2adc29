package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry owned by a seller. Stock is decremented
// as part of the order-creation transaction.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	SellerID    int64
}

// Stock classification bounds. The critical bound is fixed; the low
// bound is the caller-supplied report threshold.
const CriticalStockBound = 10

const (
	StockStatusCritical = "CRÍTICO"
	StockStatusLow      = "BAIXO"
	StockStatusOK       = "OK"
)

// ClassifyStock labels a stock level against the fixed critical bound
// and the configurable low threshold.
func ClassifyStock(stock, threshold int) string {
	switch {
	case stock <= CriticalStockBound:
		return StockStatusCritical
	case stock <= threshold:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
