package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	InvoiceUC   *billing.InvoiceUseCase
	DocumentUC  *billing.DocumentUseCase
	Counter     InvoiceCounter
}

// Router registra las rutas de la API. Las rutas aceptan la barra final opcional
// (el enrutamiento de Fiber no es estricto por defecto).
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.ServiceName, deps.Counter)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	app.Post("/create_invoice/", invoiceHandler.Create)
	app.Post("/pay_invoice/:invoice_id", invoiceHandler.Pay)
	app.Get("/invoices/", invoiceHandler.List)
	app.Get("/invoice/:invoice_id", invoiceHandler.GetByID)

	if deps.DocumentUC != nil {
		documentHandler := NewDocumentHandler(deps.DocumentUC)
		app.Get("/invoice/:invoice_id/pdf", documentHandler.PDF)
		app.Get("/invoice/:invoice_id/xml", documentHandler.XML)
	}
}
