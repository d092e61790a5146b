package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto.
// Quantity es el stock inicial; después solo se modifica vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Category     string          `json:"category"`
	ReorderLevel *int            `json:"reorderLevel"`
	Status       string          `json:"status"`
}

// UpdateProductRequest campos a actualizar (nil = sin cambio). No incluye
// quantity: el stock se mueve con POST /api/inventory/movements.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	SKU          *string          `json:"sku"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	ReorderLevel *int             `json:"reorderLevel"`
	Status       *string          `json:"status"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Category     string          `json:"category"`
	ReorderLevel int             `json:"reorderLevel"`
	Status       string          `json:"status"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
