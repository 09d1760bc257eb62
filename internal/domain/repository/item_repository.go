package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Search devuelve los ítems ordenados por relevancia descendente sobre
// nombre y descripción.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Item, error)
	ListBySubCategory(ctx context.Context, subCategoryID string) ([]*entity.Item, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Search(ctx context.Context, query string) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id string) error
}
