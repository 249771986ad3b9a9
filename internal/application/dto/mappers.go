package dto

import "github.com/jhoicas/Proyectos-api/internal/domain/entity"

// FromUser convierte la entidad (nunca expone el hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		HourlyRate: u.HourlyRate,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// FromProject convierte la entidad e incluye la etiqueta del estado.
func FromProject(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ManagerID:   p.ManagerID,
		StartDate:   DateFrom(p.StartDate),
		Deadline:    DateFrom(p.Deadline),
		Status:      p.Status,
		StatusLabel: entity.StatusToLabel(entity.ProjectStatuses, p.Status),
		Priority:    p.Priority,
		Budget:      p.Budget,
		Tag:         p.Tag,
		ImageURL:    p.ImageURL,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromTask(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		ProjectID:      t.ProjectID,
		CreatedBy:      t.CreatedBy,
		Status:         t.Status,
		StatusLabel:    entity.StatusToLabel(entity.TaskStatuses, t.Status),
		Priority:       t.Priority,
		EstimatedHours: t.EstimatedHours,
		Deadline:       DateFrom(t.Deadline),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTaskAssignee(a *entity.TaskAssignee) TaskAssigneeResponse {
	return TaskAssigneeResponse{ID: a.ID, TaskID: a.TaskID, UserID: a.UserID, CreatedAt: a.CreatedAt}
}

func FromTimeEntry(e *entity.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:          e.ID,
		TaskID:      e.TaskID,
		UserID:      e.UserID,
		Date:        DateFrom(e.Date),
		Hours:       e.Hours,
		Description: e.Description,
		Billable:    e.Billable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromExpense(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        DateFrom(e.Date),
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromPartner(p *entity.Partner) PartnerResponse {
	return PartnerResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		Role:      p.Role,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Cost:        p.Cost,
		Unit:        p.Unit,
		Category:    p.Category,
		IsAvailable: p.IsAvailable,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPurchaseOrder(o *entity.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:               o.ID,
		VendorID:         o.VendorID,
		ProjectID:        o.ProjectID,
		CreatedBy:        o.CreatedBy,
		ExpectedDelivery: DateFrom(o.ExpectedDelivery),
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		Tax:              o.Tax,
		Note:             o.Note,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromSalesOrder(o *entity.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:          o.ID,
		OrderNo:     o.OrderNo,
		PartnerID:   o.PartnerID,
		ProjectID:   o.ProjectID,
		CreatedBy:   o.CreatedBy,
		OrderDate:   DateFrom(o.OrderDate),
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Tax:         o.Tax,
		Note:        o.Note,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromInvoice(i *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           i.ID,
		SalesOrderID: i.SalesOrderID,
		CreatedBy:    i.CreatedBy,
		Status:       i.Status,
		Amount:       i.Amount,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromVendorBill(b *entity.VendorBill) VendorBillResponse {
	return VendorBillResponse{
		ID:              b.ID,
		VendorID:        b.VendorID,
		PurchaseOrderID: b.PurchaseOrderID,
		Status:          b.Status,
		Amount:          b.Amount,
		CreatedAt:       b.CreatedAt,
	}
}

func FromLineItem(li *entity.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		DocumentRef: DocumentRefOf(li.Kind, li.DocumentID),
		ProductID:   li.ProductID,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		SubTotal:    li.SubTotal,
	}
}

// MapList aplica f a cada elemento.
func MapList[E any, R any](in []*E, f func(*E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, f(e))
	}
	return out
}
