package billing

import (
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateSubtotal Σ precio × cantidad.
func CalculateSubtotal(products []entity.Product) decimal.Decimal {
	subtotal := decimal.Zero
	for _, p := range products {
		subtotal = subtotal.Add(p.LineTotal())
	}
	return subtotal
}

// CalculateTotal implementa el total con IVA (servicio de dominio).
// Total = Subtotal * (1 + IVA/100). No redondea: el redondeo ocurre solo al aplicar pagos.
func CalculateTotal(products []entity.Product, ivaRate decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(ivaRate.Div(hundred))
	return CalculateSubtotal(products).Mul(factor)
}

// CalculateTax valor del IVA contenido en el total.
func CalculateTax(products []entity.Product, ivaRate decimal.Decimal) decimal.Decimal {
	return CalculateTotal(products, ivaRate).Sub(CalculateSubtotal(products))
}
