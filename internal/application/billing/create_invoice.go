package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	domainbilling "github.com/jhoicas/Facturacion-api/internal/domain/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// Mensajes devueltos al cliente.
const (
	MsgInvoiceCreated = "Factura creada"
	MsgInvoicePaid    = "Factura pagada exitosamente"
	MsgPartialPayment = "Pago realizado parcialmente"
)

// InvoiceUseCase casos de uso de facturación: crear, pagar y consultar facturas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, log *logger.Logger) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, log: log, now: time.Now}
}

// CreateInvoice calcula el total con IVA, inicializa el saldo y guarda la factura en estado pendiente.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	if in.Client == nil || len(in.Products) == 0 || in.IVARate == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.IVARate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	products := make([]entity.Product, 0, len(in.Products))
	for _, p := range in.Products {
		if p.Name == "" || p.Price == nil || p.Quantity == nil {
			return nil, domain.ErrInvalidInput
		}
		if p.Price.IsNegative() || *p.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		products = append(products, entity.Product{
			Name:     p.Name,
			Price:    *p.Price,
			Quantity: *p.Quantity,
		})
	}

	// Un total en cero es válido: la factura nace pendiente y un pago de 0 la cierra.
	total := domainbilling.CalculateTotal(products, *in.IVARate)

	client := entity.Client{
		Name:    in.Client.Name,
		Cedula:  in.Client.Cedula,
		Email:   in.Client.Email,
		Address: in.Client.Address,
	}
	inv := entity.NewInvoice(uuid.New().String(), client, products, *in.IVARate, total, uc.now())
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	logger.FromContext(ctx, uc.log).Info().
		Str("invoice_id", inv.ID).
		Str("total", inv.Total.String()).
		Int("products", len(inv.Products)).
		Msg("factura creada")

	return &dto.CreateInvoiceResponse{
		Message:   MsgInvoiceCreated,
		InvoiceID: inv.ID,
		Invoice:   ToInvoiceResponse(inv),
	}, nil
}

// GetInvoice obtiene una factura por ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToInvoiceResponse(inv)
	return &resp, nil
}

// ListInvoices devuelve todas las facturas en orden de creación, sin paginar.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInvoiceResponse(inv))
	}
	logger.FromContext(ctx, uc.log).Debug().Int("count", len(out)).Msg("facturas listadas")
	return out, nil
}

// ToInvoiceResponse convierte la entidad a su representación JSON.
func ToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	products := make([]dto.ProductResponse, 0, len(inv.Products))
	for _, p := range inv.Products {
		products = append(products, dto.ProductResponse{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	return dto.InvoiceResponse{
		ID: inv.ID,
		Client: dto.ClientResponse{
			Name:    inv.Client.Name,
			Cedula:  inv.Client.Cedula,
			Email:   inv.Client.Email,
			Address: inv.Client.Address,
		},
		Products:         products,
		IVARate:          inv.IVARate,
		Total:            inv.Total,
		RemainingBalance: inv.RemainingBalance,
		Status:           string(inv.Status),
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}
