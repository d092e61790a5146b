package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN     = "IN"     // entrada: suma al stock
	MovementTypeOUT    = "OUT"    // salida: resta del stock
	MovementTypeADJUST = "ADJUST" // ajuste: fija el stock en valor absoluto
)

// ValidMovementType indica si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT || t == MovementTypeADJUST
}

// Movement entrada inmutable del libro de movimientos (append-only, nunca se
// edita ni se borra). SnapshotQty es el stock resultante del producto justo
// después de aplicar este movimiento: se escribe una vez y no se recalcula.
// ProductID puede quedar huérfano si el producto se borra después.
type Movement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Type        string    `json:"type"` // IN | OUT | ADJUST
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date"`
	SnapshotQty int       `json:"snapshotQty"`
}
