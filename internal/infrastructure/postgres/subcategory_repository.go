package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre
// PostgreSQL. Las lecturas traen el nombre de la categoría padre (join)
// para presentación.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

const subCategorySelect = `
	SELECT s.id, s.name, s.image_store_id, s.image_url, s.description, s.category_id, c.name,
		s.tax_applicability, s.tax, s.tax_type, s.created_at, s.updated_at
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

// Create persiste una subcategoría nueva.
func (r *SubCategoryRepo) Create(ctx context.Context, s *entity.SubCategory) error {
	query := `
		INSERT INTO subcategories (id, name, image_store_id, image_url, description, category_id, tax_applicability, tax, tax_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Image.StoreID, s.Image.URL, s.Description, s.CategoryID,
		s.TaxApplicability, s.Tax, s.TaxType, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría padre", domain.ErrNotFound)
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID. Devuelve (nil, nil) si no existe.
func (r *SubCategoryRepo) GetByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	return r.scanOne(r.q.QueryRow(ctx, subCategorySelect+` WHERE s.id = $1`, id))
}

// GetByName obtiene una subcategoría por nombre exacto. Si varios padres
// tienen subcategorías homónimas se devuelve la más reciente.
func (r *SubCategoryRepo) GetByName(ctx context.Context, name string) (*entity.SubCategory, error) {
	query := subCategorySelect + ` WHERE s.name = $1 ORDER BY s.created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, name))
}

// List lista todas las subcategorías, la más reciente primero.
func (r *SubCategoryRepo) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.list(ctx, subCategorySelect+` ORDER BY s.created_at DESC`)
}

// ListByCategory lista las subcategorías de una categoría, la más reciente primero.
func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	query := subCategorySelect + ` WHERE s.category_id = $1 ORDER BY s.created_at DESC`
	return r.list(ctx, query, categoryID)
}

// CountByCategory cuenta las subcategorías que referencian una categoría.
func (r *SubCategoryRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM subcategories WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return n, nil
}

// Update actualiza una subcategoría existente.
func (r *SubCategoryRepo) Update(ctx context.Context, s *entity.SubCategory) error {
	query := `
		UPDATE subcategories SET name = $2, image_store_id = $3, image_url = $4, description = $5,
			category_id = $6, tax_applicability = $7, tax = $8, tax_type = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Image.StoreID, s.Image.URL, s.Description, s.CategoryID,
		s.TaxApplicability, s.Tax, s.TaxType, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría nueva", domain.ErrNotFound)
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría por ID. Los ítems que la referencian
// quedan con subcategoría nula (SET NULL en la clave foránea).
func (r *SubCategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

func (r *SubCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubCategory
	for rows.Next() {
		var s entity.SubCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Image.StoreID, &s.Image.URL, &s.Description,
			&s.CategoryID, &s.CategoryName, &s.TaxApplicability, &s.Tax, &s.TaxType,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SubCategoryRepo) scanOne(row pgx.Row) (*entity.SubCategory, error) {
	var s entity.SubCategory
	err := row.Scan(&s.ID, &s.Name, &s.Image.StoreID, &s.Image.URL, &s.Description,
		&s.CategoryID, &s.CategoryName, &s.TaxApplicability, &s.Tax, &s.TaxType,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}
