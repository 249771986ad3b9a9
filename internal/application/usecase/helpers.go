package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

var now = time.Now

func newID() string {
	return uuid.New().String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// optionalRef normaliza "" a nil para columnas FK opcionales.
func optionalRef(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}

// normalizeProjectStatus admite forma máquina o etiqueta; vacío → planned.
func normalizeProjectStatus(in string) (string, error) {
	if in == "" {
		return entity.ProjectPlanned, nil
	}
	s, ok := entity.NormalizeStatus(entity.ProjectStatuses, in)
	if !ok {
		return "", domain.Invalid("status", in, "status %q is not a valid project status", in)
	}
	return s, nil
}

// normalizeTaskStatus admite forma máquina o etiqueta; vacío → new.
func normalizeTaskStatus(in string) (string, error) {
	if in == "" {
		return entity.TaskNew, nil
	}
	s, ok := entity.NormalizeStatus(entity.TaskStatuses, in)
	if !ok {
		return "", domain.Invalid("status", in, "status %q is not a valid task status", in)
	}
	return s, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
