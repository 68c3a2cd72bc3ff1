package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newInvoice(total string) *entity.Invoice {
	return entity.NewInvoice(
		"inv-1",
		entity.Client{Name: "Ana", Cedula: "123", Email: "ana@example.com", Address: "Calle 1"},
		[]entity.Product{{Name: "Cuaderno", Price: dec("10"), Quantity: 2}},
		dec("15"),
		dec(total),
		time.Now(),
	)
}

func cash(amount string) entity.Payment {
	return entity.Payment{Method: entity.PaymentMethodCash, AmountPaid: dec(amount)}
}

func TestNewInvoice_SaldoIgualTotalYPendiente(t *testing.T) {
	inv := newInvoice("23")
	assert.True(t, inv.Total.Equal(inv.RemainingBalance))
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	assert.False(t, inv.IsPaid())
}

func TestApplyPayment_ParcialYTotal(t *testing.T) {
	inv := newInvoice("23")

	require.True(t, inv.CanPay(dec("10")))
	inv.ApplyPayment(cash("10"), time.Now())
	assert.True(t, dec("13").Equal(inv.RemainingBalance))
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)

	require.True(t, inv.CanPay(dec("13")))
	inv.ApplyPayment(cash("13"), time.Now())
	assert.True(t, inv.RemainingBalance.IsZero())
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)

	// factura pagada: cualquier monto positivo excede el saldo
	assert.False(t, inv.CanPay(dec("5")))
}

func TestApplyPayment_RedondeaA2Decimales(t *testing.T) {
	inv := newInvoice("1.11888")
	inv.ApplyPayment(cash("0.5"), time.Now())
	assert.Equal(t, "0.62", inv.RemainingBalance.String())
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
}

func TestApplyPayment_EmpateRedondeaAlPar(t *testing.T) {
	cases := []struct {
		total, paid, want string
	}{
		{"1.125", "1", "0.12"},
		{"0.135", "0", "0.14"},
		{"2.345", "1", "1.34"},
		{"10.375", "0.25", "10.12"},
	}
	for _, tc := range cases {
		inv := newInvoice(tc.total)
		inv.ApplyPayment(cash(tc.paid), time.Now())
		assert.Equal(t, tc.want, inv.RemainingBalance.String(), "%s - %s", tc.total, tc.paid)
		assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	}
}

func TestApplyPayment_ResiduoMenorAMedioCentavoQuedaPagada(t *testing.T) {
	inv := newInvoice("1.11888")
	inv.ApplyPayment(cash("1.118"), time.Now())
	assert.True(t, inv.RemainingBalance.IsZero(), "0.00088 se redondea a 0")
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
}

func TestApplyPayment_SecuenciaQueSumaElTotal(t *testing.T) {
	inv := newInvoice("100.35")
	for _, a := range []string{"0.35", "25", "25", "49.99", "0.01"} {
		require.True(t, inv.CanPay(dec(a)), "pago %s", a)
		inv.ApplyPayment(cash(a), time.Now())
	}
	assert.True(t, inv.RemainingBalance.IsZero())
	assert.True(t, inv.IsPaid())
}

func TestCanPay_Sobrepago(t *testing.T) {
	inv := newInvoice("23")
	assert.False(t, inv.CanPay(dec("23.01")))
	assert.True(t, inv.CanPay(dec("23")))
}

func TestClone_NoComparteProductos(t *testing.T) {
	inv := newInvoice("23")
	cp := inv.Clone()
	cp.Products[0].Name = "otro"
	cp.RemainingBalance = dec("1")
	assert.Equal(t, "Cuaderno", inv.Products[0].Name)
	assert.True(t, dec("23").Equal(inv.RemainingBalance))
}

func TestParsePaymentMethod(t *testing.T) {
	cases := map[string]entity.PaymentMethod{
		"efectivo": entity.PaymentMethodCash,
		"cash":     entity.PaymentMethodCash,
		"Tarjeta":  entity.PaymentMethodCard,
		"card":     entity.PaymentMethodCard,
	}
	for in, want := range cases {
		got, ok := entity.ParsePaymentMethod(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := entity.ParsePaymentMethod("cheque")
	assert.False(t, ok)
}
