package store

import "github.com/shopspring/decimal"

// Stats agregados del dashboard, derivados del catálogo actual.
type Stats struct {
	TotalProducts int
	TotalStock    int
	TotalValue    decimal.Decimal
	LowStock      int
}

// GetStats calcula los agregados en cada llamada, directamente sobre el
// estado vivo. Sin caché ni vista materializada: siempre refleja el
// contenedor al momento de la llamada.
func (s *Store) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalProducts: len(s.state.Products),
		TotalValue:    decimal.Zero,
	}
	for _, p := range s.state.Products {
		stats.TotalStock += p.Quantity
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.LowStock() {
			stats.LowStock++
		}
	}
	return stats
}
