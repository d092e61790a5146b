package dto

import "time"

// RegisterMovementRequest registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"` // IN | OUT | ADJUST
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// MovementResponse representación HTTP de un movimiento del libro.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
	SnapshotQty int       `json:"snapshotQty"`
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
