package entity

import "github.com/shopspring/decimal"

// Product línea de factura. No tiene identidad propia; se guarda por valor dentro de la factura.
type Product struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// LineTotal precio × cantidad, sin impuestos.
func (p Product) LineTotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}
