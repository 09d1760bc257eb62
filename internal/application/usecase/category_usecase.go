package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Es la capa de
// consistencia: valida unicidad global del nombre, resuelve el ciclo de
// vida de la imagen y protege el borrado cuando hay hijos colgando.
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubCategoryRepository
	items         repository.ItemRepository
	images        *ImageLifecycle
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	subcategories repository.SubCategoryRepository,
	items repository.ItemRepository,
	images *ImageLifecycle,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories:    categories,
		subcategories: subcategories,
		items:         items,
		images:        images,
	}
}

// Create crea una categoría. Orden obligatorio: validación → chequeo de
// duplicado → subida de imagen → persistencia. Si la subida falla no se
// escribe nada.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, image *ports.ImageUpload) (*dto.CategoryResponse, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen de la categoría es requerida", domain.ErrValidation)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: name y description son requeridos", domain.ErrValidation)
	}
	if in.TaxApplicability == nil || in.Tax == nil || in.TaxType == nil {
		return nil, fmt.Errorf("%w: tax_applicability, tax y tax_type son requeridos", domain.ErrValidation)
	}
	if err := validateTax(in.Tax, in.TaxType); err != nil {
		return nil, err
	}

	// Pre-chequeo de nombre duplicado. El índice único de la base es la
	// señal autoritativa; esto solo mejora el mensaje.
	existing, err := uc.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe una categoría con ese nombre", domain.ErrDuplicate)
	}

	img, err := uc.images.Attach(ctx, *image)
	if err != nil {
		return nil, err
	}

	tax, taxType := *in.Tax, *in.TaxType
	if !*in.TaxApplicability {
		tax, taxType = decimal.Zero, entity.TaxTypeNone
	}
	now := time.Now()
	category := &entity.Category{
		ID:               uuid.New().String(),
		Name:             name,
		Image:            img,
		Description:      strings.TrimSpace(in.Description),
		TaxApplicability: *in.TaxApplicability,
		Tax:              tax,
		TaxType:          taxType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías, la más reciente primero.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Count: len(items), Items: items}, nil
}

// GetByIDOrName resuelve una categoría por UUID o, si el identificador no
// es un UUID, por nombre exacto.
func (uc *CategoryUseCase) GetByIDOrName(ctx context.Context, identifier string) (*dto.CategoryResponse, error) {
	var category *entity.Category
	var err error
	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		category, err = uc.categories.GetByID(ctx, identifier)
	} else {
		category, err = uc.categories.GetByName(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría (parcial). Reglas: el cambio de nombre
// re-verifica unicidad excluyéndose a sí misma; una imagen nueva se sube
// antes de borrar la anterior; fijar tax_applicability en false fuerza
// tax=0 y tax_type=none aunque vengan otros valores en la misma petición.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest, image *ports.ImageUpload) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrValidation)
		}
		if name != category.Name {
			existing, err := uc.categories.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != category.ID {
				return nil, fmt.Errorf("%w: ya existe una categoría con ese nombre", domain.ErrDuplicate)
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, fmt.Errorf("%w: description no puede quedar vacía", domain.ErrValidation)
		}
		category.Description = strings.TrimSpace(*in.Description)
	}
	if err := validateTax(in.Tax, in.TaxType); err != nil {
		return nil, err
	}

	if image != nil {
		img, _, err := uc.images.Replace(ctx, category.Image, *image)
		if err != nil {
			return nil, err
		}
		category.Image = img
	}

	if in.TaxApplicability != nil {
		category.TaxApplicability = *in.TaxApplicability
		if !category.TaxApplicability {
			// Reset forzado: gana sobre cualquier tax/tax_type de la misma petición.
			category.Tax = decimal.Zero
			category.TaxType = entity.TaxTypeNone
		}
	}
	if in.Tax != nil && category.TaxApplicability {
		category.Tax = *in.Tax
	}
	if in.TaxType != nil && category.TaxApplicability {
		category.TaxType = *in.TaxType
	}

	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría y libera su imagen (best-effort). Se
// rechaza con conflicto si aún existen subcategorías o ítems que la
// referencian; la base lo respalda con claves foráneas RESTRICT.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}

	subs, err := uc.subcategories.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	items, err := uc.items.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if subs > 0 || items > 0 {
		return fmt.Errorf("%w: la categoría tiene %d subcategorías y %d ítems", domain.ErrConflict, subs, items)
	}

	uc.images.Release(ctx, category.Image)
	return uc.categories.Delete(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Image:            dto.ImageResponse{StoreID: c.Image.StoreID, URL: c.Image.URL},
		Description:      c.Description,
		TaxApplicability: c.TaxApplicability,
		Tax:              c.Tax,
		TaxType:          c.TaxType,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// validateTax valida los campos de impuesto opcionales de una petición.
func validateTax(tax *decimal.Decimal, taxType *entity.TaxType) error {
	if tax != nil && tax.IsNegative() {
		return fmt.Errorf("%w: tax no puede ser negativo", domain.ErrValidation)
	}
	if taxType != nil && !taxType.Valid() {
		return fmt.Errorf("%w: tax_type debe ser percentage, fixed o none", domain.ErrValidation)
	}
	return nil
}
