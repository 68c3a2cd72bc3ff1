package billing

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// DocumentUseCase genera los documentos descargables de una factura (PDF y XML).
type DocumentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	pdf         InvoicePDFGenerator
	xml         InvoiceXMLBuilder
}

// NewDocumentUseCase construye el caso de uso inyectando sus dependencias.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLBuilder,
) *DocumentUseCase {
	return &DocumentUseCase{invoiceRepo: invoiceRepo, pdf: pdf, xml: xml}
}

// XMLDocument XML canonicalizado y su digest SHA-256 en base64.
type XMLDocument struct {
	Content  []byte
	Digest   string
	Filename string
}

// DownloadInvoicePDF genera el PDF de la factura.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.ID), nil
}

// DownloadInvoiceXML genera el XML UBL de la factura. domain.ErrNotFound si no existe.
func (uc *DocumentUseCase) DownloadInvoiceXML(ctx context.Context, invoiceID string) (*XMLDocument, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	content, err := uc.xml.Build(inv)
	if err != nil {
		return nil, fmt.Errorf("xml: generación fallida: %w", err)
	}
	sum := sha256.Sum256(content)
	return &XMLDocument{
		Content:  content,
		Digest:   base64.StdEncoding.EncodeToString(sum[:]),
		Filename: fmt.Sprintf("factura_%s.xml", inv.ID),
	}, nil
}

func (uc *DocumentUseCase) load(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}
