package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRequest datos del cliente en POST /create_invoice/.
type ClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Cedula  string `json:"cedula" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// ProductRequest línea de producto. Price y Quantity son punteros para distinguir "ausente" de cero.
type ProductRequest struct {
	Name     string           `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Quantity *int64           `json:"quantity" validate:"required,min=0"`
}

// CreateInvoiceRequest body para POST /create_invoice/.
// Campos como id, total, remaining_balance o status se ignoran si vienen en el cuerpo.
type CreateInvoiceRequest struct {
	Client   *ClientRequest   `json:"client" validate:"required"`
	Products []ProductRequest `json:"products" validate:"required,min=1,dive"`
	IVARate  *decimal.Decimal `json:"iva_rate" validate:"required"`
}

// PayInvoiceRequest body para POST /pay_invoice/:invoice_id.
type PayInvoiceRequest struct {
	Method     string           `json:"method" validate:"required"`
	AmountPaid *decimal.Decimal `json:"amount_paid" validate:"required"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	Name    string `json:"name"`
	Cedula  string `json:"cedula"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ProductResponse línea de producto en respuestas.
type ProductResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// InvoiceResponse factura completa para GET /invoice/:invoice_id y listados.
type InvoiceResponse struct {
	ID               string            `json:"id"`
	Client           ClientResponse    `json:"client"`
	Products         []ProductResponse `json:"products"`
	IVARate          decimal.Decimal   `json:"iva_rate"`
	Total            decimal.Decimal   `json:"total"`
	RemainingBalance decimal.Decimal   `json:"remaining_balance"`
	Status           string            `json:"status"` // pendiente|pagada
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// CreateInvoiceResponse respuesta de POST /create_invoice/.
type CreateInvoiceResponse struct {
	Message   string          `json:"message"`
	InvoiceID string          `json:"invoice_id"`
	Invoice   InvoiceResponse `json:"invoice"`
}

// PayInvoiceResponse respuesta de POST /pay_invoice/:invoice_id.
type PayInvoiceResponse struct {
	Message string          `json:"message"`
	Invoice InvoiceResponse `json:"invoice"`
}
