package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      string
	}{
		{"zero stock is critical", 0, 30, StockStatusCritical},
		{"negative stock is critical", -3, 30, StockStatusCritical},
		{"at critical bound", 10, 30, StockStatusCritical},
		{"just above critical bound", 11, 30, StockStatusLow},
		{"at threshold", 30, 30, StockStatusLow},
		{"above threshold", 31, 30, StockStatusOK},
		{"critical wins over tight threshold", 5, 5, StockStatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStock(tt.stock, tt.threshold))
		})
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range []string{PaymentMethodCard, PaymentMethodPix, PaymentMethodBoleto} {
		assert.True(t, ValidPaymentMethod(m), m)
	}

	assert.False(t, ValidPaymentMethod("cheque"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("CARTAO"))
}
