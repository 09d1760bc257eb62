package dto

// ImageResponse referencia de imagen en respuestas.
type ImageResponse struct {
	StoreID string `json:"store_id"`
	URL     string `json:"url"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
