package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
// Los listados vienen ordenados por creación, la más reciente primero.
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) error
	GetByID(ctx context.Context, id string) (*entity.SubCategory, error)
	GetByName(ctx context.Context, name string) (*entity.SubCategory, error)
	List(ctx context.Context) ([]*entity.SubCategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Update(ctx context.Context, sub *entity.SubCategory) error
	Delete(ctx context.Context, id string) error
}
