package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/store"
)

func TestAddMovement_INSumaAlStock(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3)

	movement, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
		Reason:    "Compra",
	})
	require.NoError(t, err)

	assert.Equal(t, 8, movement.SnapshotQty)
	assert.Equal(t, 8, st.GetProduct(product.ID).Quantity)
	assert.Equal(t, "Compra", movement.Reason)
	assert.False(t, movement.Date.IsZero())
}

func TestAddMovement_OUTRestaDelStock(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 8)

	movement, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeOUT,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, movement.SnapshotQty)
	assert.Equal(t, 5, st.GetProduct(product.ID).Quantity)
}

func TestAddMovement_ADJUSTFijaValorAbsoluto(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3) // reorderLevel default 10

	movement, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeADJUST,
		Quantity:  20,
		Reason:    "Conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, movement.SnapshotQty)
	assert.Equal(t, 20, st.GetProduct(product.ID).Quantity)
	assert.Zero(t, st.GetStats().LowStock,
		"con stock 20 sobre reorden 10 el producto sale de stock bajo")
}

// Propiedad: tras cada movimiento, el quantity del producto coincide con el
// snapshotQty del movimiento más reciente de ese producto.
func TestAddMovement_SnapshotQtyCoincideConStock(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 0)

	steps := []store.MovementInput{
		{ProductID: product.ID, Type: entity.MovementTypeIN, Quantity: 10},
		{ProductID: product.ID, Type: entity.MovementTypeOUT, Quantity: 4},
		{ProductID: product.ID, Type: entity.MovementTypeADJUST, Quantity: 2},
		{ProductID: product.ID, Type: entity.MovementTypeIN, Quantity: 1},
		{ProductID: product.ID, Type: entity.MovementTypeOUT, Quantity: 3},
	}
	for _, in := range steps {
		_, err := st.AddMovement(in)
		require.NoError(t, err)

		history := st.MovementsForProduct(product.ID)
		require.NotEmpty(t, history)
		assert.Equal(t, st.GetProduct(product.ID).Quantity, history[0].SnapshotQty,
			"el stock debe coincidir con el snapshotQty del último movimiento")
	}
	assert.Equal(t, 0, st.GetProduct(product.ID).Quantity)
}

func TestAddMovement_OUTSobregiroRechazaSinMutar(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3)

	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeOUT,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	assert.Equal(t, 3, st.GetProduct(product.ID).Quantity, "el stock no debe cambiar")
	assert.Empty(t, st.Movements(), "no debe registrarse ningún movimiento")
}

func TestAddMovement_ProductoInexistenteRechaza(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddMovement(store.MovementInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeIN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, st.Movements())
}

func TestAddMovement_CantidadNegativaRechaza(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3)

	// Un ADJUST negativo no tiene sentido; el motor lo rechaza defensivamente
	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeADJUST,
		Quantity:  -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 3, st.GetProduct(product.ID).Quantity)
}

func TestAddMovement_TipoDesconocidoRechaza(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3)

	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddMovement_AtomicidadEnFalloDePersistencia(t *testing.T) {
	st, snap := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 3)

	snap.failNext = true
	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
	})
	require.ErrorIs(t, err, errDiscoLleno)

	// Ni entrada en el libro ni stock aplicado: todo o nada
	assert.Empty(t, st.Movements())
	assert.Equal(t, 3, st.GetProduct(product.ID).Quantity)
}

func TestAddMovement_PersisteYNotificaUnaVez(t *testing.T) {
	st, snap := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 0)
	savesBefore := snap.saves

	notified := 0
	st.Subscribe(func(entity.State) { notified++ })

	_, err := st.AddMovement(store.MovementInput{
		ProductID: product.ID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, savesBefore+1, snap.saves,
		"libro y producto se persisten en un solo Save")
	assert.Equal(t, 1, notified, "una sola notificación por movimiento")
}

func TestMovementsForProduct_MasRecientesPrimero(t *testing.T) {
	st, _ := newTestStore(t)
	product := addTestProduct(t, st, "Widget", 10, 0)

	for _, qty := range []int{1, 2, 3} {
		_, err := st.AddMovement(store.MovementInput{
			ProductID: product.ID,
			Type:      entity.MovementTypeIN,
			Quantity:  qty,
		})
		require.NoError(t, err)
	}

	history := st.MovementsForProduct(product.ID)
	require.Len(t, history, 3)
	assert.Equal(t, 3, history[0].Quantity)
	assert.Equal(t, 1, history[2].Quantity)
}
