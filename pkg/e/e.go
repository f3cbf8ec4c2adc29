package e

import "fmt"

var (
	// Transaction plumbing
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("produto não encontrado")
	ErrBuyerNotFound   = fmt.Errorf("comprador não encontrado")

	// 400 Bad Request
	ErrOrderRejected      = fmt.Errorf("pedido rejeitado")
	ErrNoItems            = fmt.Errorf("order must contain at least one item")
	ErrInvalidQuantity    = fmt.Errorf("item quantity must be positive")
	ErrInvalidUnitPrice   = fmt.Errorf("item unit price must not be negative")
	ErrUnknownPayment     = fmt.Errorf("unknown payment method")
	ErrInvalidRequestBody = fmt.Errorf("invalid request body")
	ErrInvalidQueryParam  = fmt.Errorf("invalid query parameter")

	// 5xx
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrStoreUnavailable    = fmt.Errorf("database unavailable")
)

// Wrap annotates err with msg.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
