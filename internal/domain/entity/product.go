package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto. Inactive excluye el producto del conteo de stock bajo.
const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// DefaultReorderLevel nivel de reorden por defecto para productos nuevos.
const DefaultReorderLevel = 10

// Product representa un producto del catálogo.
// Quantity solo se modifica vía movimientos una vez creado el producto.
// Category es una etiqueta de texto libre, no una foreign key: borrar la
// categoría deja la etiqueta colgando a propósito.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"` // único entre productos cuando no está vacío
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Category     string          `json:"category"`
	ReorderLevel int             `json:"reorderLevel"`
	Status       string          `json:"status"` // Active | Inactive
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// LowStock indica si el producto está en o bajo su nivel de reorden y activo.
func (p Product) LowStock() bool {
	limit := p.ReorderLevel
	if limit <= 0 {
		limit = DefaultReorderLevel
	}
	return p.Quantity <= limit && p.Status != ProductStatusInactive
}
