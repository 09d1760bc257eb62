package entity

// TaxType tipo de impuesto aplicable a una categoría, subcategoría o ítem.
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
	TaxTypeNone       TaxType = "none"
)

// Valid verifica que el valor sea uno de los tres tipos permitidos.
func (t TaxType) Valid() bool {
	switch t {
	case TaxTypePercentage, TaxTypeFixed, TaxTypeNone:
		return true
	}
	return false
}
