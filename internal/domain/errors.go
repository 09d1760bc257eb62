package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los mapean
// a códigos HTTP con errors.Is; los usecases los envuelven con contexto.
var (
	ErrValidation = errors.New("entrada inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrDuplicate  = errors.New("recurso duplicado")
	ErrConflict   = errors.New("conflicto con el estado actual")
	ErrUpload     = errors.New("fallo al subir la imagen")
)
