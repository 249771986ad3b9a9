// Package analytics contiene los cálculos de solo lectura: el resumen financiero
// por proyecto y el dashboard de la cartera.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// Summary snapshot financiero de un proyecto. Nunca se persiste.
type Summary struct {
	Project   *entity.Project
	Progress  int
	Total     int
	Done      int
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
	Expenses  decimal.Decimal
	LaborCost decimal.Decimal
}

// Progress porcentaje entero de tareas done (redondeo half-up).
// Sin tareas: 100 si el proyecto está completed, si no 0. El progress almacenado no se usa.
func Progress(projectStatus string, total, done int) int {
	if total <= 0 {
		if projectStatus == entity.ProjectCompleted {
			return 100
		}
		return 0
	}
	return (200*done + total) / (2 * total)
}

// CountTasks devuelve (total, done).
func CountTasks(tasks []*entity.Task) (int, int) {
	done := 0
	for _, t := range tasks {
		if t.Status == entity.TaskDone {
			done++
		}
	}
	return len(tasks), done
}

// Revenue suma total_amount de las órdenes de venta; null cuenta como 0.
func Revenue(orders []*entity.SalesOrder) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.TotalAmount.Valid {
			sum = sum.Add(o.TotalAmount.Decimal)
		}
	}
	return sum
}

// ExpenseTotal suma los importes de los gastos; null cuenta como 0.
func ExpenseTotal(expenses []*entity.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		if e.Amount.Valid {
			sum = sum.Add(e.Amount.Decimal)
		}
	}
	return sum
}

// LaborUserIDs ids distintos de usuario presentes en las entradas, en orden de aparición.
func LaborUserIDs(entries []*entity.TimeEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.UserID == nil || *e.UserID == "" {
			continue
		}
		if _, ok := seen[*e.UserID]; ok {
			continue
		}
		seen[*e.UserID] = struct{}{}
		ids = append(ids, *e.UserID)
	}
	return ids
}

// LaborCost Σ horas × tarifa del usuario. Usuario ausente o sin tarifa cuenta como 0.
func LaborCost(entries []*entity.TimeEntry, users map[string]*entity.User) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.UserID == nil {
			continue
		}
		u, ok := users[*e.UserID]
		if !ok || u == nil {
			continue
		}
		sum = sum.Add(e.Hours.Mul(u.HourlyRate))
	}
	return sum
}

// Compute arma el Summary con los datos ya cargados.
func Compute(
	project *entity.Project,
	tasks []*entity.Task,
	orders []*entity.SalesOrder,
	expenses []*entity.Expense,
	entries []*entity.TimeEntry,
	users map[string]*entity.User,
) *Summary {
	total, done := CountTasks(tasks)
	exp := ExpenseTotal(expenses)
	labor := LaborCost(entries, users)
	return &Summary{
		Project:   project,
		Progress:  Progress(project.Status, total, done),
		Total:     total,
		Done:      done,
		Revenue:   Revenue(orders),
		Cost:      exp.Add(labor),
		Expenses:  exp,
		LaborCost: labor,
	}
}
