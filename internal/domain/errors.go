package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrDuplicateSKU    = errors.New("ya existe un producto con ese SKU")
	ErrDuplicateName   = errors.New("ya existe una categoría con ese nombre")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrNegativeStock   = errors.New("el stock no puede ser negativo")
	ErrValidation      = errors.New("entrada inválida")
)
