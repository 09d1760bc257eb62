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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// Las lecturas resuelven los nombres de categoría y subcategoría (joins);
// la búsqueda usa full-text de Postgres sobre nombre y descripción con
// orden por ts_rank descendente.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemSelect = `
	SELECT i.id, i.name, i.image_store_id, i.image_url, i.description,
		i.tax_applicability, i.tax, i.tax_type, i.base_amount, i.discount, i.total_amount,
		i.category_id, c.name, i.subcategory_id, coalesce(s.name, ''),
		i.created_at, i.updated_at
	FROM items i
	JOIN categories c ON c.id = i.category_id
	LEFT JOIN subcategories s ON s.id = i.subcategory_id`

// Create persiste un ítem nuevo.
func (r *ItemRepo) Create(ctx context.Context, i *entity.Item) error {
	query := `
		INSERT INTO items (id, name, image_store_id, image_url, description, tax_applicability, tax, tax_type,
			base_amount, discount, total_amount, category_id, subcategory_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Name, i.Image.StoreID, i.Image.URL, i.Description,
		i.TaxApplicability, i.Tax, i.TaxType, i.BaseAmount, i.Discount, i.TotalAmount,
		i.CategoryID, i.SubCategoryID, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría o subcategoría", domain.ErrNotFound)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.scanOne(r.q.QueryRow(ctx, itemSelect+` WHERE i.id = $1`, id))
}

// GetByName obtiene un ítem por nombre exacto (el más reciente si hay homónimos:
// el nombre de ítem no es único).
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	query := itemSelect + ` WHERE i.name = $1 ORDER BY i.created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, name))
}

// List lista todos los ítems, el más reciente primero.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, itemSelect+` ORDER BY i.created_at DESC`)
}

// ListByCategory lista los ítems de una categoría, el más reciente primero.
func (r *ItemRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Item, error) {
	query := itemSelect + ` WHERE i.category_id = $1 ORDER BY i.created_at DESC`
	return r.list(ctx, query, categoryID)
}

// ListBySubCategory lista los ítems de una subcategoría, el más reciente primero.
func (r *ItemRepo) ListBySubCategory(ctx context.Context, subCategoryID string) ([]*entity.Item, error) {
	query := itemSelect + ` WHERE i.subcategory_id = $1 ORDER BY i.created_at DESC`
	return r.list(ctx, query, subCategoryID)
}

// CountByCategory cuenta los ítems que referencian una categoría.
func (r *ItemRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM items WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// Search busca ítems por nombre y descripción con full-text (configuración
// simple, sin stemming por idioma) y ordena por relevancia descendente.
func (r *ItemRepo) Search(ctx context.Context, query string) ([]*entity.Item, error) {
	sql := itemSelect + `
	WHERE to_tsvector('simple', i.name || ' ' || i.description) @@ plainto_tsquery('simple', $1)
	ORDER BY ts_rank(to_tsvector('simple', i.name || ' ' || i.description), plainto_tsquery('simple', $1)) DESC`
	return r.list(ctx, sql, query)
}

// Update actualiza un ítem existente.
func (r *ItemRepo) Update(ctx context.Context, i *entity.Item) error {
	query := `
		UPDATE items SET name = $2, image_store_id = $3, image_url = $4, description = $5,
			tax_applicability = $6, tax = $7, tax_type = $8, base_amount = $9, discount = $10,
			total_amount = $11, category_id = $12, subcategory_id = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Name, i.Image.StoreID, i.Image.URL, i.Description,
		i.TaxApplicability, i.Tax, i.TaxType, i.BaseAmount, i.Discount, i.TotalAmount,
		i.CategoryID, i.SubCategoryID, i.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría o subcategoría", domain.ErrNotFound)
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Image.StoreID, &i.Image.URL, &i.Description,
			&i.TaxApplicability, &i.Tax, &i.TaxType, &i.BaseAmount, &i.Discount, &i.TotalAmount,
			&i.CategoryID, &i.CategoryName, &i.SubCategoryID, &i.SubCategoryName,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(&i.ID, &i.Name, &i.Image.StoreID, &i.Image.URL, &i.Description,
		&i.TaxApplicability, &i.Tax, &i.TaxType, &i.BaseAmount, &i.Discount, &i.TotalAmount,
		&i.CategoryID, &i.CategoryName, &i.SubCategoryID, &i.SubCategoryName,
		&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}
