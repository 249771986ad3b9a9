package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: totales de toda la cartera.
type DashboardSummaryDTO struct {
	ProjectsByStatus map[string]int  `json:"projects_by_status"`
	TasksByStatus    map[string]int  `json:"tasks_by_status"`
	TotalProjects    int             `json:"total_projects"`
	TotalTasks       int             `json:"total_tasks"`
	Revenue          decimal.Decimal `json:"revenue"`
	Cost             decimal.Decimal `json:"cost"` // gastos + mano de obra
	PendingInvoices  int             `json:"pending_invoices"`
}

// StatusLabelDTO par forma máquina / etiqueta.
type StatusLabelDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatusCatalogDTO respuesta de GET /api/meta/statuses.
type StatusCatalogDTO struct {
	Project []StatusLabelDTO `json:"project"`
	Task    []StatusLabelDTO `json:"task"`
}
