package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// NewList construye la respuesta; nunca devuelve Items nil.
func NewList[T any](items []T, limit, offset int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Page: PageResponse{Limit: limit, Offset: offset}}
}

// ErrorResponse cuerpo de error HTTP. Field solo se informa en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Date fecha de calendario; acepta "2006-01-02" o RFC3339 en la entrada.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// UnmarshalJSON admite null, fecha corta o timestamp completo.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

// MarshalJSON escribe la fecha corta.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// TimePtr convierte a *time.Time (nil si d es nil o cero).
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// DateFrom construye un *Date desde la entidad.
func DateFrom(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

// Number importe que se serializa como número JSON (sin comillas), sin perder precisión.
type Number struct {
	decimal.Decimal
}

// NewNumber envuelve un decimal.
func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// MarshalJSON emite el valor exacto como literal numérico.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
