package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las implementaciones devuelven copias: modificar el resultado de GetByID o List no altera lo guardado.
type InvoiceRepository interface {
	// Create guarda una factura nueva. ErrDuplicate si el ID ya existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List devuelve todas las facturas en orden de creación.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// Update ejecuta fn sobre la factura con acceso exclusivo por ID y guarda el resultado
	// solo si fn no retorna error. ErrNotFound si el ID no existe.
	Update(ctx context.Context, id string, fn func(invoice *entity.Invoice) error) (*entity.Invoice, error)
}
