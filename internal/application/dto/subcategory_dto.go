package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CreateSubCategoryRequest entrada para crear una subcategoría. Los campos
// de impuesto omitidos se heredan de la categoría padre (copia única).
type CreateSubCategoryRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	Description      string           `json:"description" validate:"required"`
	CategoryID       string           `json:"category_id" validate:"required,uuid"`
	TaxApplicability *bool            `json:"tax_applicability"`
	Tax              *decimal.Decimal `json:"tax"`
	TaxType          *entity.TaxType  `json:"tax_type"`
}

// UpdateSubCategoryRequest entrada para actualizar una subcategoría
// (actualización parcial; nil = sin cambio).
type UpdateSubCategoryRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string          `json:"description"`
	CategoryID       *string          `json:"category_id" validate:"omitempty,uuid"`
	TaxApplicability *bool            `json:"tax_applicability"`
	Tax              *decimal.Decimal `json:"tax"`
	TaxType          *entity.TaxType  `json:"tax_type"`
}

// SubCategoryResponse salida de una subcategoría con el padre resuelto.
type SubCategoryResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Image            ImageResponse   `json:"image"`
	Description      string          `json:"description"`
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	TaxApplicability bool            `json:"tax_applicability"`
	Tax              decimal.Decimal `json:"tax"`
	TaxType          entity.TaxType  `json:"tax_type"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SubCategoryListResponse listado de subcategorías.
type SubCategoryListResponse struct {
	Count int                   `json:"count"`
	Items []SubCategoryResponse `json:"items"`
}
