package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON (23.5), no como strings ("23.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con un mensaje (liveness).
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Invoices int    `json:"invoices"`
}
