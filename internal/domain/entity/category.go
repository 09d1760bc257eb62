package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category categoría raíz del catálogo. Su nombre es único a nivel global
// y sus atributos de impuesto son la fuente de herencia para subcategorías.
type Category struct {
	ID               string
	Name             string
	Image            Image
	Description      string
	TaxApplicability bool
	Tax              decimal.Decimal
	TaxType          TaxType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
