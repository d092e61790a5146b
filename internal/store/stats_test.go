package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/store"
)

func TestGetStats_StoreVacio(t *testing.T) {
	st, _ := newTestStore(t)

	stats := st.GetStats()
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalStock)
	assert.True(t, stats.TotalValue.IsZero())
	assert.Zero(t, stats.LowStock)
}

// Escenario de referencia: producto Widget a 10 con stock 0, entrada de 5.
func TestGetStats_EscenarioWidget(t *testing.T) {
	st, _ := newTestStore(t)

	product := addTestProduct(t, st, "Widget", 10, 0)
	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
	})
	require.NoError(t, err)

	stats := st.GetStats()
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalStock)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(50)),
		"totalValue = 5 × 10 = 50, obtuvo %s", stats.TotalValue)
	assert.Equal(t, 1, stats.LowStock, "stock 5 con reorden default 10 es stock bajo")
}

func TestGetStats_InactivoNoCuentaComoStockBajo(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddProduct(store.ProductInput{
		Name:     "Descontinuado",
		Price:    decimal.NewFromInt(10),
		Quantity: 1,
		Status:   entity.ProductStatusInactive,
	})
	require.NoError(t, err)

	stats := st.GetStats()
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Zero(t, stats.LowStock, "un producto Inactive no cuenta en lowStock")
}

func TestGetStats_SinCacheSiempreRefleja(t *testing.T) {
	st, _ := newTestStore(t)

	product := addTestProduct(t, st, "Widget", 10, 0)
	assert.Equal(t, 0, st.GetStats().TotalStock)

	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeADJUST,
		Quantity:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, st.GetStats().TotalStock, "sin caché: cada llamada recalcula")

	require.NoError(t, st.DeleteProduct(product.ID))
	stats := st.GetStats()
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalStock)
}

func TestGetStats_ReordenPersonalizado(t *testing.T) {
	st, _ := newTestStore(t)

	reorder := 2
	_, err := st.AddProduct(store.ProductInput{
		Name:         "Abundante",
		Price:        decimal.NewFromInt(1),
		Quantity:     5,
		ReorderLevel: &reorder,
	})
	require.NoError(t, err)

	assert.Zero(t, st.GetStats().LowStock, "stock 5 sobre reorden 2 no es stock bajo")
}
