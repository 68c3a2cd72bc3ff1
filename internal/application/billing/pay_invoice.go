package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// PayInvoice aplica un pago al saldo pendiente de la factura.
//
// Retorna:
//   - domain.ErrNotFound              si la factura no existe.
//   - domain.ErrInvalidInput          si el método es desconocido o el monto es negativo.
//   - domain.ErrPaymentExceedsBalance si el monto supera el saldo (la factura no cambia).
func (uc *InvoiceUseCase) PayInvoice(ctx context.Context, invoiceID string, in dto.PayInvoiceRequest) (*dto.PayInvoiceResponse, error) {
	method, ok := entity.ParsePaymentMethod(in.Method)
	if !ok || in.AmountPaid == nil || in.AmountPaid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	payment := entity.Payment{Method: method, AmountPaid: *in.AmountPaid}
	log := logger.FromContext(ctx, uc.log)

	inv, err := uc.invoiceRepo.Update(ctx, invoiceID, func(inv *entity.Invoice) error {
		if !inv.CanPay(payment.AmountPaid) {
			return domain.ErrPaymentExceedsBalance
		}
		inv.ApplyPayment(payment, uc.now())
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrPaymentExceedsBalance) {
			log.Warn().
				Str("invoice_id", invoiceID).
				Str("amount_paid", payment.AmountPaid.String()).
				Err(err).
				Msg("pago rechazado")
			return nil, err
		}
		return nil, fmt.Errorf("aplicar pago: %w", err)
	}

	msg := MsgPartialPayment
	if inv.IsPaid() {
		msg = MsgInvoicePaid
	}
	log.Info().
		Str("invoice_id", inv.ID).
		Str("method", string(payment.Method)).
		Str("amount_paid", payment.AmountPaid.String()).
		Str("remaining_balance", inv.RemainingBalance.String()).
		Str("status", string(inv.Status)).
		Msg("pago aplicado")

	return &dto.PayInvoiceResponse{
		Message: msg,
		Invoice: ToInvoiceResponse(inv),
	}, nil
}
