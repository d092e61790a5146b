package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// ProductInput datos para crear un producto. SKU, Category, ReorderLevel y
// Status son opcionales; se aplican los defaults de la entidad.
type ProductInput struct {
	Name         string
	SKU          string
	Price        decimal.Decimal
	Quantity     int
	Category     string
	ReorderLevel *int
	Status       string
}

// ProductUpdate campos modificables de un producto; nil = sin cambio.
// Quantity no aparece: el stock solo se modifica vía AddMovement.
type ProductUpdate struct {
	Name         *string
	SKU          *string
	Price        *decimal.Decimal
	Category     *string
	ReorderLevel *int
	Status       *string
}

// AddProduct crea un producto. Rechaza con ErrDuplicateSKU si el SKU no vacío
// ya está en uso, y con ErrValidation si falta el nombre o el precio o la
// cantidad inicial son negativos. Devuelve el producto creado.
func (s *Store) AddProduct(in ProductInput) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Name == "" {
		return entity.Product{}, domain.ErrValidation
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return entity.Product{}, domain.ErrValidation
	}
	if in.SKU != "" && s.skuTaken(in.SKU, "") {
		return entity.Product{}, domain.ErrDuplicateSKU
	}

	reorder := entity.DefaultReorderLevel
	if in.ReorderLevel != nil {
		reorder = *in.ReorderLevel
	}
	status := in.Status
	if status == "" {
		status = entity.ProductStatusActive
	}

	now := time.Now()
	product := entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Category:     in.Category,
		ReorderLevel: reorder,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	prev := s.state.Clone()
	s.state.Products = append(s.state.Products, product)
	if err := s.commit(prev); err != nil {
		return entity.Product{}, err
	}
	return product, nil
}

// UpdateProduct aplica updates al producto indicado. Si el id no existe es un
// no-op sin error (devuelve nil). Un SKU nuevo que colisione con otro producto
// rechaza con ErrDuplicateSKU sin aplicar ningún cambio.
func (s *Store) UpdateProduct(id string, in ProductUpdate) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.productIndex(id)
	if idx < 0 {
		return nil, nil
	}
	if in.SKU != nil && *in.SKU != "" && *in.SKU != s.state.Products[idx].SKU && s.skuTaken(*in.SKU, id) {
		return nil, domain.ErrDuplicateSKU
	}

	prev := s.state.Clone()
	p := &s.state.Products[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.ReorderLevel != nil {
		p.ReorderLevel = *in.ReorderLevel
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()

	if err := s.commit(prev); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// DeleteProduct elimina el producto si existe (sin error si no está). Los
// movimientos que lo referencian se conservan: el libro es append-only y los
// consumidores toleran lookups fallidos al mostrar historial.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Clone()
	kept := s.state.Products[:0]
	for _, p := range s.state.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.state.Products = kept
	return s.commit(prev)
}

// Products devuelve una copia del catálogo actual.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.state.Products))
	copy(out, s.state.Products)
	return out
}

// GetProduct busca un producto por ID; nil si no existe.
func (s *Store) GetProduct(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.productIndex(id); idx >= 0 {
		p := s.state.Products[idx]
		return &p
	}
	return nil
}

// productIndex busca por ID; -1 si no existe. Requiere el mutex tomado.
func (s *Store) productIndex(id string) int {
	for i, p := range s.state.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// skuTaken indica si otro producto (distinto de exceptID) ya usa ese SKU.
func (s *Store) skuTaken(sku, exceptID string) bool {
	for _, p := range s.state.Products {
		if p.ID != exceptID && p.SKU == sku {
			return true
		}
	}
	return false
}
