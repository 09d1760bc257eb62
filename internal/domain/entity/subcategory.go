package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubCategory subcategoría atada a exactamente una Category. Los atributos
// de impuesto se copian de la categoría padre al crear si el llamador los
// omite (copia única, no un enlace vivo al padre).
type SubCategory struct {
	ID               string
	Name             string
	Image            Image
	Description      string
	CategoryID       string
	CategoryName     string // resuelto para presentación (join o lookup)
	TaxApplicability bool
	Tax              decimal.Decimal
	TaxType          TaxType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
