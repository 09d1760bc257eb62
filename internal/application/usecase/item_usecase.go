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
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD y búsqueda para ítems. Mantiene los dos
// invariantes del ítem: total_amount == base_amount - discount después de
// toda escritura, y la subcategoría (si la hay) pertenece a la misma
// categoría del ítem.
type ItemUseCase struct {
	items         repository.ItemRepository
	categories    repository.CategoryRepository
	subcategories repository.SubCategoryRepository
	images        *ImageLifecycle
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	subcategories repository.SubCategoryRepository,
	images *ImageLifecycle,
) *ItemUseCase {
	return &ItemUseCase{
		items:         items,
		categories:    categories,
		subcategories: subcategories,
		images:        images,
	}
}

// Create crea un ítem bajo una categoría existente. El descuento omitido
// vale 0 y el total se deriva siempre; una subcategoría enviada debe
// existir y pertenecer a la categoría enviada (si no, conflicto).
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest, image *ports.ImageUpload) (*dto.ItemResponse, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen del ítem es requerida", domain.ErrValidation)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Description) == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("%w: name, description y category_id son requeridos", domain.ErrValidation)
	}
	if in.BaseAmount == nil {
		return nil, fmt.Errorf("%w: base_amount es requerido", domain.ErrValidation)
	}
	if in.BaseAmount.IsNegative() {
		return nil, fmt.Errorf("%w: base_amount no puede ser negativo", domain.ErrValidation)
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount no puede ser negativo", domain.ErrValidation)
	}
	if err := validateTax(in.Tax, in.TaxType); err != nil {
		return nil, err
	}

	parent, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: categoría padre", domain.ErrNotFound)
	}

	var subCategoryID *string
	subCategoryName := ""
	if in.SubCategoryID != nil && *in.SubCategoryID != "" {
		sub, err := uc.subcategories.GetByID(ctx, *in.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
		}
		if sub.CategoryID != parent.ID {
			return nil, fmt.Errorf("%w: la subcategoría no pertenece a la categoría indicada", domain.ErrConflict)
		}
		subCategoryID = &sub.ID
		subCategoryName = sub.Name
	}

	img, err := uc.images.Attach(ctx, *image)
	if err != nil {
		return nil, err
	}

	applicability := false
	if in.TaxApplicability != nil {
		applicability = *in.TaxApplicability
	}
	tax := decimal.Zero
	if in.Tax != nil {
		tax = *in.Tax
	}
	taxType := entity.TaxTypeNone
	if in.TaxType != nil {
		taxType = *in.TaxType
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}

	now := time.Now()
	item := &entity.Item{
		ID:               uuid.New().String(),
		Name:             name,
		Image:            img,
		Description:      strings.TrimSpace(in.Description),
		TaxApplicability: applicability,
		Tax:              tax,
		TaxType:          taxType,
		BaseAmount:       *in.BaseAmount,
		Discount:         discount,
		TotalAmount:      catalog.TotalAmount(*in.BaseAmount, discount),
		CategoryID:       parent.ID,
		CategoryName:     parent.Name,
		SubCategoryID:    subCategoryID,
		SubCategoryName:  subCategoryName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista todos los ítems, el más reciente primero.
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list), nil
}

// ListByCategory lista los ítems de una categoría existente.
func (uc *ItemUseCase) ListByCategory(ctx context.Context, categoryID string) (*dto.ItemListResponse, error) {
	parent, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}
	list, err := uc.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list), nil
}

// ListBySubCategory lista los ítems de una subcategoría existente.
func (uc *ItemUseCase) ListBySubCategory(ctx context.Context, subCategoryID string) (*dto.ItemListResponse, error) {
	sub, err := uc.subcategories.GetByID(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
	}
	list, err := uc.items.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list), nil
}

// GetByIDOrName resuelve un ítem por UUID o por nombre exacto.
func (uc *ItemUseCase) GetByIDOrName(ctx context.Context, identifier string) (*dto.ItemResponse, error) {
	var item *entity.Item
	var err error
	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		item, err = uc.items.GetByID(ctx, identifier)
	} else {
		item, err = uc.items.GetByName(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem", domain.ErrNotFound)
	}
	return toItemResponse(item), nil
}

// Search busca ítems por nombre y descripción, ordenados por relevancia
// descendente. Una consulta vacía es error de validación, no un listado vacío.
func (uc *ItemUseCase) Search(ctx context.Context, query string) (*dto.ItemListResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: el parámetro de búsqueda 'q' es requerido", domain.ErrValidation)
	}
	list, err := uc.items.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list), nil
}

// Update actualiza un ítem (parcial). La consistencia categoría/subcategoría
// se re-valida con la categoría efectiva (la nueva si también cambia); el
// total se recalcula con los valores efectivos de base y descuento; fijar
// tax_applicability en false fuerza tax=0 y tax_type=none.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest, image *ports.ImageUpload) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem", domain.ErrNotFound)
	}

	// Categoría efectiva: la nueva si viene en la petición.
	if in.CategoryID != nil && *in.CategoryID != item.CategoryID {
		newParent, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if newParent == nil {
			return nil, fmt.Errorf("%w: categoría nueva", domain.ErrNotFound)
		}
		item.CategoryID = newParent.ID
		item.CategoryName = newParent.Name
	}

	if in.SubCategoryID != nil {
		if *in.SubCategoryID == "" {
			// Quitar la subcategoría explícitamente.
			item.SubCategoryID = nil
			item.SubCategoryName = ""
		} else {
			sub, err := uc.subcategories.GetByID(ctx, *in.SubCategoryID)
			if err != nil {
				return nil, err
			}
			if sub == nil {
				return nil, fmt.Errorf("%w: subcategoría nueva", domain.ErrNotFound)
			}
			if sub.CategoryID != item.CategoryID {
				return nil, fmt.Errorf("%w: la subcategoría no pertenece a la categoría indicada", domain.ErrConflict)
			}
			item.SubCategoryID = &sub.ID
			item.SubCategoryName = sub.Name
		}
	} else if in.CategoryID != nil && item.SubCategoryID != nil {
		// La categoría cambió y el ítem conserva subcategoría: el invariante
		// subcategoría.categoría == ítem.categoría se re-verifica igual.
		sub, err := uc.subcategories.GetByID(ctx, *item.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub == nil || sub.CategoryID != item.CategoryID {
			return nil, fmt.Errorf("%w: la subcategoría actual no pertenece a la categoría nueva", domain.ErrConflict)
		}
	}

	if in.BaseAmount != nil && in.BaseAmount.IsNegative() {
		return nil, fmt.Errorf("%w: base_amount no puede ser negativo", domain.ErrValidation)
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount no puede ser negativo", domain.ErrValidation)
	}
	if err := validateTax(in.Tax, in.TaxType); err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrValidation)
		}
		item.Name = name
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, fmt.Errorf("%w: description no puede quedar vacía", domain.ErrValidation)
		}
		item.Description = strings.TrimSpace(*in.Description)
	}

	// La imagen se toca solo con la petición ya validada por completo: un
	// abort posterior dejaría el registro apuntando a un blob borrado.
	if image != nil {
		img, _, err := uc.images.Replace(ctx, item.Image, *image)
		if err != nil {
			return nil, err
		}
		item.Image = img
	}

	if in.TaxApplicability != nil {
		item.TaxApplicability = *in.TaxApplicability
		if !item.TaxApplicability {
			item.Tax = decimal.Zero
			item.TaxType = entity.TaxTypeNone
		}
	}
	if in.Tax != nil && item.TaxApplicability {
		item.Tax = *in.Tax
	}
	if in.TaxType != nil && item.TaxApplicability {
		item.TaxType = *in.TaxType
	}

	if in.BaseAmount != nil {
		item.BaseAmount = *in.BaseAmount
	}
	if in.Discount != nil {
		item.Discount = *in.Discount
	}
	if in.BaseAmount != nil || in.Discount != nil {
		item.TotalAmount = catalog.TotalAmount(item.BaseAmount, item.Discount)
	}

	item.UpdatedAt = time.Now()
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un ítem y libera su imagen (best-effort).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: ítem", domain.ErrNotFound)
	}
	uc.images.Release(ctx, item.Image)
	return uc.items.Delete(ctx, id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:               i.ID,
		Name:             i.Name,
		Image:            dto.ImageResponse{StoreID: i.Image.StoreID, URL: i.Image.URL},
		Description:      i.Description,
		TaxApplicability: i.TaxApplicability,
		Tax:              i.Tax,
		TaxType:          i.TaxType,
		BaseAmount:       i.BaseAmount,
		Discount:         i.Discount,
		TotalAmount:      i.TotalAmount,
		CategoryID:       i.CategoryID,
		CategoryName:     i.CategoryName,
		SubCategoryID:    i.SubCategoryID,
		SubCategoryName:  i.SubCategoryName,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func toItemListResponse(list []*entity.Item) *dto.ItemListResponse {
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{Count: len(items), Items: items}
}
