package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrTemplateNotFound  = errors.New("plantilla no encontrada en el catálogo")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrMalformedData     = errors.New("datos malformados")
	ErrRemoteUnavailable = errors.New("catálogo remoto no disponible")
)
