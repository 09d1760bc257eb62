// Package catalog contiene las reglas puras de consistencia del catálogo
// (servicios de dominio sin estado): herencia de impuestos y total derivado.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// TaxOverride campos de impuesto opcionales que el llamador puede fijar.
// Un puntero nil significa "no especificado".
type TaxOverride struct {
	Applicability *bool
	Tax           *decimal.Decimal
	Type          *entity.TaxType
}

// InheritTax resuelve los atributos de impuesto de una subcategoría nueva:
// cada campo omitido se copia del padre de forma individual, en el momento
// de la creación. Es una copia, no una referencia: cambios posteriores en
// el padre no afectan a la subcategoría ya creada.
func InheritTax(parent *entity.Category, o TaxOverride) (bool, decimal.Decimal, entity.TaxType) {
	applicability := parent.TaxApplicability
	if o.Applicability != nil {
		applicability = *o.Applicability
	}
	tax := parent.Tax
	if o.Tax != nil {
		tax = *o.Tax
	}
	taxType := parent.TaxType
	if o.Type != nil {
		taxType = *o.Type
	}
	return applicability, tax, taxType
}

// TotalAmount calcula el campo derivado del ítem: base - descuento.
func TotalAmount(baseAmount, discount decimal.Decimal) decimal.Decimal {
	return baseAmount.Sub(discount)
}
