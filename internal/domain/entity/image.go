package entity

// Image referencia a una imagen almacenada externamente (S3 o compatible).
// StoreID y URL viajan siempre juntos: un registro persistido nunca queda
// con una referencia de imagen incompleta.
type Image struct {
	StoreID string
	URL     string
}

// IsZero indica si la referencia está vacía (sin imagen asociada).
func (i Image) IsZero() bool {
	return i.StoreID == "" && i.URL == ""
}
