package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PortfolioTotals totales agregados de toda la cartera de proyectos.
type PortfolioTotals struct {
	ProjectsByStatus map[string]int
	TasksByStatus    map[string]int
	Revenue          decimal.Decimal // suma de total_amount de órdenes de venta con proyecto
	ExpenseTotal     decimal.Decimal
	LaborCost        decimal.Decimal // horas × tarifa del usuario, solo entradas con tarea de un proyecto
	PendingInvoices  int
}

// AnalyticsRepository consultas de lectura para el dashboard. Read-only.
type AnalyticsRepository interface {
	// GetPortfolioTotals usa COALESCE para devolver cero cuando no hay datos.
	GetPortfolioTotals(ctx context.Context) (*PortfolioTotals, error)
}
