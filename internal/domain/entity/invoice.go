package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de pago de una factura. Los valores son las etiquetas que viajan en JSON.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pendiente"
	InvoiceStatusPaid    InvoiceStatus = "pagada"
)

// Invoice representa una factura con su saldo pendiente.
// Total se calcula una sola vez al crearla; RemainingBalance solo cambia con ApplyPayment.
type Invoice struct {
	ID               string
	Client           Client
	Products         []Product
	IVARate          decimal.Decimal // porcentaje, ej: 15 = 15%
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           InvoiceStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInvoice arma una factura pendiente con el saldo inicial igual al total.
func NewInvoice(id string, client Client, products []Product, ivaRate, total decimal.Decimal, now time.Time) *Invoice {
	return &Invoice{
		ID:               id,
		Client:           client,
		Products:         append([]Product(nil), products...),
		IVARate:          ivaRate,
		Total:            total,
		RemainingBalance: total,
		Status:           InvoiceStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsPaid indica si la factura ya fue pagada por completo.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// CanPay indica si el monto cabe en el saldo pendiente.
func (i *Invoice) CanPay(amount decimal.Decimal) bool {
	return !amount.GreaterThan(i.RemainingBalance)
}

// ApplyPayment descuenta el pago del saldo, redondea a 2 decimales (empates al par:
// 0.125 -> 0.12) y marca la factura como pagada cuando el saldo llega a cero (o menos, en cuyo caso queda exactamente en 0).
// El llamador debe verificar CanPay antes; ApplyPayment no rechaza sobrepagos.
func (i *Invoice) ApplyPayment(p Payment, now time.Time) {
	balance := i.RemainingBalance.Sub(p.AmountPaid).RoundBank(2)
	if balance.LessThanOrEqual(decimal.Zero) {
		i.Status = InvoiceStatusPaid
		balance = decimal.Zero
	}
	i.RemainingBalance = balance
	i.UpdatedAt = now
}

// Clone devuelve una copia independiente (los productos no comparten el slice).
func (i *Invoice) Clone() *Invoice {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Products = append([]Product(nil), i.Products...)
	return &cp
}
