package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func TestGenerateInvoicePDF(t *testing.T) {
	inv := entity.NewInvoice(
		"3f1c9a1e-0000-4000-8000-000000000001",
		entity.Client{Name: "María Pérez", Cedula: "1020304050", Email: "maria@example.com", Address: "Cra 7 # 12-34"},
		[]entity.Product{
			{Name: "Cuaderno", Price: decimal.NewFromInt(10), Quantity: 2},
			{Name: "Lápiz", Price: decimal.RequireFromString("1.50"), Quantity: 4},
		},
		decimal.NewFromInt(15),
		decimal.RequireFromString("29.9"),
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), inv)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")
}

func TestGenerateInvoicePDF_FacturaNula(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	g := NewMarotoPDFGenerator()
	got := g.formatMoney(decimal.RequireFromString("1234567.5"))
	assert.True(t, strings.HasSuffix(got, ",50"), "decimales con coma: %s", got)
	assert.Contains(t, got, ".", "separador de miles: %s", got)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "PAGADA", statusLabel(entity.InvoiceStatusPaid))
	assert.Equal(t, "PENDIENTE", statusLabel(entity.InvoiceStatusPending))
}
