package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría. Todos los campos
// son requeridos (la imagen viaja aparte como multipart).
type CreateCategoryRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	Description      string           `json:"description" validate:"required"`
	TaxApplicability *bool            `json:"tax_applicability" validate:"required"`
	Tax              *decimal.Decimal `json:"tax" validate:"required"`
	TaxType          *entity.TaxType  `json:"tax_type" validate:"required"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. Campos nil
// se dejan intactos (actualización parcial).
type UpdateCategoryRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string          `json:"description"`
	TaxApplicability *bool            `json:"tax_applicability"`
	Tax              *decimal.Decimal `json:"tax"`
	TaxType          *entity.TaxType  `json:"tax_type"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Image            ImageResponse   `json:"image"`
	Description      string          `json:"description"`
	TaxApplicability bool            `json:"tax_applicability"`
	Tax              decimal.Decimal `json:"tax"`
	TaxType          entity.TaxType  `json:"tax_type"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CategoryListResponse listado de categorías (sin paginación, como el resto del catálogo).
type CategoryListResponse struct {
	Count int                `json:"count"`
	Items []CategoryResponse `json:"items"`
}
