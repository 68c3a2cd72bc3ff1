package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// InvoiceCounter número de facturas guardadas (lo implementa el almacén en memoria).
type InvoiceCounter interface {
	Len() int
}

// HealthHandler endpoints de liveness.
type HealthHandler struct {
	service string
	counter InvoiceCounter
}

// NewHealthHandler construye el handler. counter puede ser nil.
func NewHealthHandler(service string, counter InvoiceCounter) *HealthHandler {
	return &HealthHandler{service: service, counter: counter}
}

// Root GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "API de facturación en funcionamiento"})
}

// Health GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Service: h.service}
	if h.counter != nil {
		resp.Invoices = h.counter.Len()
	}
	return c.JSON(resp)
}
