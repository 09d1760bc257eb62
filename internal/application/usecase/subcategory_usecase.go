package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// SubCategoryUseCase casos de uso CRUD para subcategorías. Valida la
// referencia al padre y aplica la herencia de impuestos: cada campo
// omitido al crear se copia de la categoría padre una sola vez.
type SubCategoryUseCase struct {
	subcategories repository.SubCategoryRepository
	categories    repository.CategoryRepository
	images        *ImageLifecycle
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(
	subcategories repository.SubCategoryRepository,
	categories repository.CategoryRepository,
	images *ImageLifecycle,
) *SubCategoryUseCase {
	return &SubCategoryUseCase{
		subcategories: subcategories,
		categories:    categories,
		images:        images,
	}
}

// Create crea una subcategoría bajo una categoría existente. La herencia
// es por campo: solo los atributos de impuesto que el llamador no envió
// se copian del padre (valores del padre en este instante, no un enlace).
func (uc *SubCategoryUseCase) Create(ctx context.Context, in dto.CreateSubCategoryRequest, image *ports.ImageUpload) (*dto.SubCategoryResponse, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: la imagen de la subcategoría es requerida", domain.ErrValidation)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Description) == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("%w: name, description y category_id son requeridos", domain.ErrValidation)
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

	img, err := uc.images.Attach(ctx, *image)
	if err != nil {
		return nil, err
	}

	applicability, tax, taxType := catalog.InheritTax(parent, catalog.TaxOverride{
		Applicability: in.TaxApplicability,
		Tax:           in.Tax,
		Type:          in.TaxType,
	})
	now := time.Now()
	sub := &entity.SubCategory{
		ID:               uuid.New().String(),
		Name:             name,
		Image:            img,
		Description:      strings.TrimSpace(in.Description),
		CategoryID:       parent.ID,
		CategoryName:     parent.Name,
		TaxApplicability: applicability,
		Tax:              tax,
		TaxType:          taxType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.subcategories.Create(ctx, sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// List lista todas las subcategorías, la más reciente primero.
func (uc *SubCategoryUseCase) List(ctx context.Context) (*dto.SubCategoryListResponse, error) {
	list, err := uc.subcategories.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSubCategoryListResponse(list), nil
}

// ListByCategory lista las subcategorías de una categoría existente.
func (uc *SubCategoryUseCase) ListByCategory(ctx context.Context, categoryID string) (*dto.SubCategoryListResponse, error) {
	parent, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}
	list, err := uc.subcategories.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toSubCategoryListResponse(list), nil
}

// GetByIDOrName resuelve una subcategoría por UUID o por nombre exacto.
func (uc *SubCategoryUseCase) GetByIDOrName(ctx context.Context, identifier string) (*dto.SubCategoryResponse, error) {
	var sub *entity.SubCategory
	var err error
	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		sub, err = uc.subcategories.GetByID(ctx, identifier)
	} else {
		sub, err = uc.subcategories.GetByName(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
	}
	return toSubCategoryResponse(sub), nil
}

// Update actualiza una subcategoría (parcial). Un cambio de categoría
// verifica que la nueva exista. Los campos de impuesto enviados se aplican
// tal cual: la herencia ocurre solo al crear.
func (uc *SubCategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateSubCategoryRequest, image *ports.ImageUpload) (*dto.SubCategoryResponse, error) {
	sub, err := uc.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
	}

	if in.CategoryID != nil && *in.CategoryID != sub.CategoryID {
		newParent, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if newParent == nil {
			return nil, fmt.Errorf("%w: categoría nueva", domain.ErrNotFound)
		}
		sub.CategoryID = newParent.ID
		sub.CategoryName = newParent.Name
	}
	if err := validateTax(in.Tax, in.TaxType); err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrValidation)
		}
		sub.Name = name
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, fmt.Errorf("%w: description no puede quedar vacía", domain.ErrValidation)
		}
		sub.Description = strings.TrimSpace(*in.Description)
	}

	// La imagen se toca solo con la petición ya validada por completo: un
	// abort posterior dejaría el registro apuntando a un blob borrado.
	if image != nil {
		img, _, err := uc.images.Replace(ctx, sub.Image, *image)
		if err != nil {
			return nil, err
		}
		sub.Image = img
	}

	if in.TaxApplicability != nil {
		sub.TaxApplicability = *in.TaxApplicability
	}
	if in.Tax != nil {
		sub.Tax = *in.Tax
	}
	if in.TaxType != nil {
		sub.TaxType = *in.TaxType
	}

	sub.UpdatedAt = time.Now()
	if err := uc.subcategories.Update(ctx, sub); err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// Delete elimina una subcategoría y libera su imagen (best-effort). Los
// ítems que la referencian quedan con subcategoría nula (SET NULL en la
// base): el ítem conserva su categoría y sigue siendo presentable.
func (uc *SubCategoryUseCase) Delete(ctx context.Context, id string) error {
	sub, err := uc.subcategories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
	}
	uc.images.Release(ctx, sub.Image)
	return uc.subcategories.Delete(ctx, id)
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	return &dto.SubCategoryResponse{
		ID:               s.ID,
		Name:             s.Name,
		Image:            dto.ImageResponse{StoreID: s.Image.StoreID, URL: s.Image.URL},
		Description:      s.Description,
		CategoryID:       s.CategoryID,
		CategoryName:     s.CategoryName,
		TaxApplicability: s.TaxApplicability,
		Tax:              s.Tax,
		TaxType:          s.TaxType,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toSubCategoryListResponse(list []*entity.SubCategory) *dto.SubCategoryListResponse {
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubCategoryResponse(s))
	}
	return &dto.SubCategoryListResponse{Count: len(items), Items: items}
}
