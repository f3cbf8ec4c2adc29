package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is created together with its order, exactly once per order.
type Payment struct {
	ID     int64
	Method string
	Date   time.Time
	Amount decimal.Decimal
	Status string
}

const (
	PaymentMethodCard   = "cartao"
	PaymentMethodPix    = "pix"
	PaymentMethodBoleto = "boleto"
)

const (
	PaymentStatusProcessing = "processando"
	PaymentStatusApproved   = "aprovado"
	PaymentStatusRefused    = "recusado"
)

// ValidPaymentMethod reports whether method is one of the accepted
// payment methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodPix, PaymentMethodBoleto:
		return true
	}
	return false
}
