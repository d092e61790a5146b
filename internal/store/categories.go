package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// AddCategory crea una categoría. Rechaza con ErrDuplicateName si ya existe
// una con ese nombre (comparación sin distinguir mayúsculas) y con
// ErrValidation si el nombre está vacío. Devuelve la categoría creada.
func (s *Store) AddCategory(name string) (entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return entity.Category{}, domain.ErrValidation
	}
	if s.categoryNameTaken(name, "") {
		return entity.Category{}, domain.ErrDuplicateName
	}

	now := time.Now()
	category := entity.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	prev := s.state.Clone()
	s.state.Categories = append(s.state.Categories, category)
	if err := s.commit(prev); err != nil {
		return entity.Category{}, err
	}
	return category, nil
}

// UpdateCategory renombra la categoría. Rechaza con ErrDuplicateName si una
// categoría distinta ya usa ese nombre; si el id no existe es un no-op sin
// error (devuelve nil).
func (s *Store) UpdateCategory(id, name string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return nil, domain.ErrValidation
	}
	if s.categoryNameTaken(name, id) {
		return nil, domain.ErrDuplicateName
	}
	idx := -1
	for i, c := range s.state.Categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	prev := s.state.Clone()
	s.state.Categories[idx].Name = name
	s.state.Categories[idx].UpdatedAt = time.Now()
	if err := s.commit(prev); err != nil {
		return nil, err
	}
	out := s.state.Categories[idx]
	return &out, nil
}

// DeleteCategory elimina la categoría si existe. No toca el campo Category de
// los productos: la etiqueta queda colgando por diseño del modelo v1.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Clone()
	kept := s.state.Categories[:0]
	for _, c := range s.state.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.state.Categories = kept
	return s.commit(prev)
}

// Categories devuelve una copia de las categorías actuales.
func (s *Store) Categories() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Category, len(s.state.Categories))
	copy(out, s.state.Categories)
	return out
}

// categoryNameTaken indica si otra categoría (distinta de exceptID) ya usa ese
// nombre, sin distinguir mayúsculas.
func (s *Store) categoryNameTaken(name, exceptID string) bool {
	for _, c := range s.state.Categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
