package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}

// InvoiceXMLBuilder genera el documento XML (UBL 2.1) de una factura ya canonicalizado.
type InvoiceXMLBuilder interface {
	Build(invoice *entity.Invoice) ([]byte, error)
}
