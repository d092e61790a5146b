package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// MovementInput datos para registrar un movimiento de stock.
type MovementInput struct {
	ProductID string
	Type      string // IN | OUT | ADJUST
	Quantity  int
	Reason    string
}

// AddMovement registra un movimiento en el libro y aplica el stock resultante
// al producto, como un solo efecto: o se ven ambos cambios o ninguno, con una
// única persistencia y una única notificación.
//
//   - IN     suma Quantity al stock actual
//   - OUT    resta Quantity; si el resultado es negativo, ErrNegativeStock
//   - ADJUST fija el stock en Quantity, ignorando el valor actual
//
// El caller ya valida la entrada en la UI, pero el motor rechaza igualmente
// cantidades negativas (ErrInvalidQuantity): un ADJUST negativo no tiene
// sentido. SnapshotQty queda escrito con el stock resultante y no se recalcula.
func (s *Store) AddMovement(in MovementInput) (entity.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !entity.ValidMovementType(in.Type) {
		return entity.Movement{}, domain.ErrValidation
	}
	idx := s.productIndex(in.ProductID)
	if idx < 0 {
		return entity.Movement{}, domain.ErrProductNotFound
	}
	if in.Quantity < 0 {
		return entity.Movement{}, domain.ErrInvalidQuantity
	}

	current := s.state.Products[idx].Quantity
	var newQty int
	switch in.Type {
	case entity.MovementTypeIN:
		newQty = current + in.Quantity
	case entity.MovementTypeOUT:
		newQty = current - in.Quantity
	case entity.MovementTypeADJUST:
		newQty = in.Quantity
	}
	if newQty < 0 {
		return entity.Movement{}, domain.ErrNegativeStock
	}

	now := time.Now()
	movement := entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Date:        now,
		SnapshotQty: newQty,
	}

	prev := s.state.Clone()
	s.state.Movements = append(s.state.Movements, movement)
	// Ruta sancionada de mutación de stock: el "sin edición directa de
	// quantity" de UpdateProduct no aplica aquí.
	s.state.Products[idx].Quantity = newQty
	s.state.Products[idx].UpdatedAt = now

	if err := s.commit(prev); err != nil {
		return entity.Movement{}, err
	}
	return movement, nil
}

// Movements devuelve una copia del libro completo de movimientos.
func (s *Store) Movements() []entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Movement, len(s.state.Movements))
	copy(out, s.state.Movements)
	return out
}

// MovementsForProduct devuelve los movimientos de un producto, del más
// reciente al más antiguo. El producto puede ya no existir: el historial se
// conserva igual.
func (s *Store) MovementsForProduct(productID string) []entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Movement
	for i := len(s.state.Movements) - 1; i >= 0; i-- {
		if s.state.Movements[i].ProductID == productID {
			out = append(out, s.state.Movements[i])
		}
	}
	return out
}
