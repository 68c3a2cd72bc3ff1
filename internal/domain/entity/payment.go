package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pago. No altera el cálculo; solo se registra en la petición.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "efectivo"
	PaymentMethodCard PaymentMethod = "tarjeta"
)

// ParsePaymentMethod acepta las etiquetas en español y los alias "cash"/"card".
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PaymentMethodCash), "cash":
		return PaymentMethodCash, true
	case string(PaymentMethodCard), "card":
		return PaymentMethodCard, true
	default:
		return "", false
	}
}

// Payment instrucción de pago aplicada a una factura y descartada después.
type Payment struct {
	Method     PaymentMethod
	AmountPaid decimal.Decimal
}
