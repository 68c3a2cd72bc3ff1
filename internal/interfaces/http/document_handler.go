package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// HeaderDocumentDigest SHA-256 (base64) del XML canonicalizado.
const HeaderDocumentDigest = "X-Document-Digest"

// DocumentHandler descarga de documentos de una factura (PDF y XML).
type DocumentHandler struct {
	uc *billing.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *billing.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// PDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        invoice_id  path  string  true  "ID de la factura"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/{invoice_id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadInvoicePDF(c.UserContext(), c.Params("invoice_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// XML godoc
// @Summary      Descargar XML UBL 2.1 de la factura
// @Tags         invoices
// @Produce      application/xml
// @Param        invoice_id  path  string  true  "ID de la factura"
// @Success      200  {string}  string
// @Header       200  {string}  X-Document-Digest  "SHA-256 (base64) del XML canonicalizado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/{invoice_id}/xml [get]
func (h *DocumentHandler) XML(c *fiber.Ctx) error {
	doc, err := h.uc.DownloadInvoiceXML(c.UserContext(), c.Params("invoice_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, doc.Filename))
	c.Set(HeaderDocumentDigest, "sha-256="+doc.Digest)
	return c.Send(doc.Content)
}
