package memory

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// PartnerRepo partners en memoria.
type PartnerRepo struct{ s *Store }

func (r *PartnerRepo) Create(_ context.Context, p *entity.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.partners.put(p.ID, *p)
	return nil
}

func (r *PartnerRepo) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.partners.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *PartnerRepo) Update(_ context.Context, p *entity.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.partners.get(p.ID); ok {
		r.s.partners.put(p.ID, *p)
	}
	return nil
}

func (r *PartnerRepo) List(_ context.Context, role string, limit, offset int) ([]*entity.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := r.s.partners.all(func(p entity.Partner) bool { return role == "" || p.Role == role })
	return ptrs(page(list, limit, offset)), nil
}

// Delete falla con ErrConflict si alguna factura de proveedor lo referencia.
func (r *PartnerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.bills.all(func(b entity.VendorBill) bool { return b.VendorID == id })) > 0 {
		return domain.ErrConflict
	}
	if !r.s.partners.remove(id) {
		return nil
	}
	for _, o := range r.s.purchases.all(func(o entity.PurchaseOrder) bool { return eq(o.VendorID, id) }) {
		o.VendorID = nil
		r.s.purchases.put(o.ID, o)
	}
	for _, o := range r.s.sales.all(func(o entity.SalesOrder) bool { return eq(o.PartnerID, id) }) {
		o.PartnerID = nil
		r.s.sales.put(o.ID, o)
	}
	return nil
}

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products.put(p.ID, *p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products.get(p.ID); ok {
		r.s.products.put(p.ID, *p)
	}
	return nil
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.products.all(nil), limit, offset)), nil
}

// Delete falla con ErrConflict si alguna línea usa el producto.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.items {
		if len(t.all(func(it entity.LineItem) bool { return it.ProductID == id })) > 0 {
			return domain.ErrConflict
		}
	}
	r.s.products.remove(id)
	return nil
}

// PurchaseOrderRepo órdenes de compra en memoria.
type PurchaseOrderRepo struct{ s *Store }

func (r *PurchaseOrderRepo) Create(_ context.Context, o *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases.put(o.ID, *o)
	return nil
}

func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.purchases.get(id); ok {
		return &o, nil
	}
	return nil, nil
}

func (r *PurchaseOrderRepo) Update(_ context.Context, o *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases.get(o.ID); ok {
		r.s.purchases.put(o.ID, *o)
	}
	return nil
}

func (r *PurchaseOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.purchases.all(nil), limit, offset)), nil
}

// Delete borra la orden con sus líneas y facturas de proveedor.
func (r *PurchaseOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.purchases.remove(id) {
		return nil
	}
	r.s.deleteItemsLocked(entity.PurchaseOrderItem, id)
	for _, b := range r.s.bills.all(func(b entity.VendorBill) bool { return b.PurchaseOrderID == id }) {
		r.s.bills.remove(b.ID)
		r.s.deleteItemsLocked(entity.VendorBillItem, b.ID)
	}
	return nil
}

// SalesOrderRepo órdenes de venta en memoria.
type SalesOrderRepo struct{ s *Store }

func (r *SalesOrderRepo) Create(_ context.Context, o *entity.SalesOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales.put(o.ID, *o)
	return nil
}

func (r *SalesOrderRepo) GetByID(_ context.Context, id string) (*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if o, ok := r.s.sales.get(id); ok {
		return &o, nil
	}
	return nil, nil
}

func (r *SalesOrderRepo) Update(_ context.Context, o *entity.SalesOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales.get(o.ID); ok {
		r.s.sales.put(o.ID, *o)
	}
	return nil
}

func (r *SalesOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.sales.all(nil), limit, offset)), nil
}

func (r *SalesOrderRepo) ListByProject(_ context.Context, projectID string) ([]*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(r.s.sales.all(func(o entity.SalesOrder) bool { return eq(o.ProjectID, projectID) })), nil
}

// Delete borra la orden con sus líneas y facturas.
func (r *SalesOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.sales.remove(id) {
		return nil
	}
	r.s.deleteItemsLocked(entity.SalesOrderItem, id)
	for _, inv := range r.s.invoices.all(func(inv entity.Invoice) bool { return inv.SalesOrderID == id }) {
		r.s.invoices.remove(inv.ID)
		r.s.deleteItemsLocked(entity.InvoiceItem, inv.ID)
	}
	return nil
}

// InvoiceRepo facturas de cliente en memoria.
type InvoiceRepo struct{ s *Store }

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices.put(inv.ID, *inv)
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if inv, ok := r.s.invoices.get(id); ok {
		return &inv, nil
	}
	return nil, nil
}

func (r *InvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices.get(inv.ID); ok {
		r.s.invoices.put(inv.ID, *inv)
	}
	return nil
}

func (r *InvoiceRepo) List(_ context.Context, limit, offset int) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.invoices.all(nil), limit, offset)), nil
}

func (r *InvoiceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.invoices.remove(id) {
		r.s.deleteItemsLocked(entity.InvoiceItem, id)
	}
	return nil
}

// VendorBillRepo facturas de proveedor en memoria.
type VendorBillRepo struct{ s *Store }

func (r *VendorBillRepo) Create(_ context.Context, b *entity.VendorBill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bills.put(b.ID, *b)
	return nil
}

func (r *VendorBillRepo) GetByID(_ context.Context, id string) (*entity.VendorBill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if b, ok := r.s.bills.get(id); ok {
		return &b, nil
	}
	return nil, nil
}

func (r *VendorBillRepo) Update(_ context.Context, b *entity.VendorBill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bills.get(b.ID); ok {
		r.s.bills.put(b.ID, *b)
	}
	return nil
}

func (r *VendorBillRepo) List(_ context.Context, limit, offset int) ([]*entity.VendorBill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return ptrs(page(r.s.bills.all(nil), limit, offset)), nil
}

func (r *VendorBillRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.bills.remove(id) {
		r.s.deleteItemsLocked(entity.VendorBillItem, id)
	}
	return nil
}

// LineItemRepo líneas de los cuatro documentos en memoria.
type LineItemRepo struct{ s *Store }

func (r *LineItemRepo) table(kind entity.ItemKind) (*table[entity.LineItem], error) {
	t, ok := r.s.items[kind]
	if !ok {
		return nil, domain.Invalid("kind", string(kind), "tipo de línea desconocido: %s", kind)
	}
	return t, nil
}

func (r *LineItemRepo) Create(_ context.Context, it *entity.LineItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, err := r.table(it.Kind)
	if err != nil {
		return err
	}
	t.put(it.ID, *it)
	return nil
}

func (r *LineItemRepo) GetByID(_ context.Context, kind entity.ItemKind, id string) (*entity.LineItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	if it, ok := t.get(id); ok {
		return &it, nil
	}
	return nil, nil
}

func (r *LineItemRepo) Update(_ context.Context, it *entity.LineItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, err := r.table(it.Kind)
	if err != nil {
		return err
	}
	if _, ok := t.get(it.ID); ok {
		t.put(it.ID, *it)
	}
	return nil
}

func (r *LineItemRepo) List(_ context.Context, kind entity.ItemKind, limit, offset int) ([]*entity.LineItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	return ptrs(page(t.all(nil), limit, offset)), nil
}

func (r *LineItemRepo) ListByDocument(_ context.Context, kind entity.ItemKind, documentID string) ([]*entity.LineItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	return ptrs(t.all(func(it entity.LineItem) bool { return it.DocumentID == documentID })), nil
}

func (r *LineItemRepo) Delete(_ context.Context, kind entity.ItemKind, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, err := r.table(kind)
	if err != nil {
		return err
	}
	t.remove(id)
	return nil
}

func (s *Store) deleteItemsLocked(kind entity.ItemKind, documentID string) {
	t := s.items[kind]
	for _, it := range t.all(func(it entity.LineItem) bool { return it.DocumentID == documentID }) {
		t.remove(it.ID)
	}
}
