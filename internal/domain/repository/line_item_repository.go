package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// LineItemRepository persiste las líneas de los cuatro tipos de documento.
// El kind selecciona la tabla; las operaciones son idénticas para todos.
type LineItemRepository interface {
	Create(ctx context.Context, item *entity.LineItem) error
	GetByID(ctx context.Context, kind entity.ItemKind, id string) (*entity.LineItem, error)
	Update(ctx context.Context, item *entity.LineItem) error
	List(ctx context.Context, kind entity.ItemKind, limit, offset int) ([]*entity.LineItem, error)
	ListByDocument(ctx context.Context, kind entity.ItemKind, documentID string) ([]*entity.LineItem, error)
	Delete(ctx context.Context, kind entity.ItemKind, id string) error
}
