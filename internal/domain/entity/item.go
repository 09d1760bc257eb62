package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item ítem vendible del catálogo. TotalAmount es un campo derivado:
// siempre vale BaseAmount - Discount y nunca lo fija el llamador.
// SubCategoryID es opcional; cuando está presente la subcategoría debe
// pertenecer a la misma categoría del ítem.
type Item struct {
	ID               string
	Name             string
	Image            Image
	Description      string
	TaxApplicability bool
	Tax              decimal.Decimal
	TaxType          TaxType
	BaseAmount       decimal.Decimal
	Discount         decimal.Decimal
	TotalAmount      decimal.Decimal
	CategoryID       string
	CategoryName     string  // resuelto para presentación
	SubCategoryID    *string // nil = sin subcategoría
	SubCategoryName  string  // resuelto para presentación
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
