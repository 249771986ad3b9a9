package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// DashboardUseCase genera los totales de toda la cartera de proyectos.
//
// Fuente de datos: AnalyticsRepository (consultas read-only agregadas en SQL).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO. Los estados sin filas aparecen con 0.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	totals, err := uc.analyticsRepo.GetPortfolioTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", err)
	}

	projects := fillStatuses(entity.ProjectStatuses, totals.ProjectsByStatus)
	tasks := fillStatuses(entity.TaskStatuses, totals.TasksByStatus)

	return &dto.DashboardSummaryDTO{
		ProjectsByStatus: projects,
		TasksByStatus:    tasks,
		TotalProjects:    sumCounts(totals.ProjectsByStatus),
		TotalTasks:       sumCounts(totals.TasksByStatus),
		Revenue:          totals.Revenue.Round(2),
		Cost:             totals.ExpenseTotal.Add(totals.LaborCost).Round(2),
		PendingInvoices:  totals.PendingInvoices,
	}, nil
}

// fillStatuses copia los conteos y añade con 0 los estados conocidos que no aparecen.
func fillStatuses(table []entity.StatusLabel, counts map[string]int) map[string]int {
	out := make(map[string]int, len(table)+len(counts))
	for _, st := range table {
		out[st.Value] = 0
	}
	for k, v := range counts {
		out[k] = v
	}
	return out
}

func sumCounts(counts map[string]int) int {
	n := 0
	for _, v := range counts {
		n += v
	}
	return n
}

// Statuses catálogo de estados de proyecto y tarea (forma máquina + etiqueta).
func (uc *DashboardUseCase) Statuses() dto.StatusCatalogDTO {
	return dto.StatusCatalogDTO{
		Project: statusLabels(entity.ProjectStatuses),
		Task:    statusLabels(entity.TaskStatuses),
	}
}

func statusLabels(table []entity.StatusLabel) []dto.StatusLabelDTO {
	out := make([]dto.StatusLabelDTO, 0, len(table))
	for _, st := range table {
		out = append(out, dto.StatusLabelDTO{Value: st.Value, Label: st.Label})
	}
	return out
}
