package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un ítem. SubCategoryID es opcional;
// si viene, la subcategoría debe pertenecer a CategoryID. El total nunca
// se recibe del llamador: se deriva de base y descuento.
type CreateItemRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	Description      string           `json:"description" validate:"required"`
	CategoryID       string           `json:"category_id" validate:"required,uuid"`
	SubCategoryID    *string          `json:"subcategory_id" validate:"omitempty,uuid"`
	TaxApplicability *bool            `json:"tax_applicability"`
	Tax              *decimal.Decimal `json:"tax"`
	TaxType          *entity.TaxType  `json:"tax_type"`
	BaseAmount       *decimal.Decimal `json:"base_amount" validate:"required"`
	Discount         *decimal.Decimal `json:"discount"`
}

// UpdateItemRequest entrada para actualizar un ítem (parcial; nil = sin
// cambio). SubCategoryID presente pero vacío significa "quitar subcategoría".
type UpdateItemRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string          `json:"description"`
	CategoryID       *string          `json:"category_id" validate:"omitempty,uuid"`
	SubCategoryID    *string          `json:"subcategory_id"`
	TaxApplicability *bool            `json:"tax_applicability"`
	Tax              *decimal.Decimal `json:"tax"`
	TaxType          *entity.TaxType  `json:"tax_type"`
	BaseAmount       *decimal.Decimal `json:"base_amount"`
	Discount         *decimal.Decimal `json:"discount"`
}

// ItemResponse salida de un ítem con las referencias resueltas.
type ItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Image            ImageResponse   `json:"image"`
	Description      string          `json:"description"`
	TaxApplicability bool            `json:"tax_applicability"`
	Tax              decimal.Decimal `json:"tax"`
	TaxType          entity.TaxType  `json:"tax_type"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	Discount         decimal.Decimal `json:"discount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	SubCategoryID    *string         `json:"subcategory_id"`
	SubCategoryName  string          `json:"subcategory_name,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ItemListResponse listado de ítems.
type ItemListResponse struct {
	Count int            `json:"count"`
	Items []ItemResponse `json:"items"`
}
