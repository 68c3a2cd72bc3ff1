package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository. Se pierde al reiniciar el proceso.
//
// mu protege el mapa y el orden de inserción; cada factura tiene además su propio candado
// para que dos pagos sobre el mismo ID no lean el mismo saldo.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[string]*entity.Invoice
	locks    map[string]*sync.Mutex
	order    []string
}

// NewInvoiceRepository construye el almacén vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Create guarda una copia de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if invoice == nil || invoice.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[invoice.ID]; ok {
		return fmt.Errorf("invoice %s: %w", invoice.ID, domain.ErrDuplicate)
	}
	r.invoices[invoice.ID] = invoice.Clone()
	r.locks[invoice.ID] = &sync.Mutex{}
	r.order = append(r.order, invoice.ID)
	return nil
}

// GetByID devuelve una copia de la factura o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return inv.Clone(), nil
}

// List devuelve copias de todas las facturas en orden de inserción.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.invoices[id].Clone())
	}
	return out, nil
}

// Update serializa las modificaciones por ID. fn recibe una copia; si retorna error
// la factura guardada queda intacta. Un contexto cancelado mientras se espera el candado
// descarta la modificación.
func (r *InvoiceRepo) Update(ctx context.Context, id string, fn func(invoice *entity.Invoice) error) (*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	lock, ok := r.locks[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	lock.Lock()
	defer lock.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	working := r.invoices[id].Clone()
	r.mu.RUnlock()

	if err := fn(working); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.invoices[id] = working.Clone()
	r.mu.Unlock()
	return working, nil
}

// Len número de facturas guardadas.
func (r *InvoiceRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices)
}
