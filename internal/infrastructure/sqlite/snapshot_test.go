package sqlite_test

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func openTestStore(t *testing.T, path string) *sqlite.SnapshotStore {
	t.Helper()
	snap, err := sqlite.Open(path, "", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { snap.Close() })
	return snap
}

// sampleState construye un estado con datos en todas las colecciones.
func sampleState() entity.State {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	state := entity.DefaultState()
	state.Products = []entity.Product{{
		ID:           "p-1",
		Name:         "Widget",
		SKU:          "W-001",
		Price:        decimal.NewFromFloat(9.99),
		Quantity:     5,
		Category:     "Tools",
		ReorderLevel: 10,
		Status:       entity.ProductStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}}
	state.Categories = []entity.Category{{ID: "c-1", Name: "Tools", CreatedAt: now, UpdatedAt: now}}
	state.Movements = []entity.Movement{{
		ID: "m-1", ProductID: "p-1", Type: entity.MovementTypeIN,
		Quantity: 5, Reason: "Stock inicial", Date: now, SnapshotQty: 5,
	}}
	state.Theme = entity.ThemeDark
	return state
}

// asJSON normaliza un estado para compararlo (time.Time pierde el reloj
// monotónico al serializar).
func asJSON(t *testing.T, state entity.State) string {
	t.Helper()
	data, err := json.Marshal(state)
	require.NoError(t, err)
	return string(data)
}

func TestLoad_SinSnapshotDevuelveDefault(t *testing.T) {
	snap := openTestStore(t, filepath.Join(t.TempDir(), "inventario.db"))

	state, err := snap.Load()
	require.NoError(t, err)

	assert.Equal(t, asJSON(t, entity.DefaultState()), asJSON(t, state))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	snap := openTestStore(t, path)

	saved := sampleState()
	require.NoError(t, snap.Save(saved))

	loaded, err := snap.Load()
	require.NoError(t, err)
	assert.Equal(t, asJSON(t, saved), asJSON(t, loaded))
}

// Propiedad: guardar lo recién cargado es idempotente.
func TestSaveLoad_SaveDeLoadEsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	snap := openTestStore(t, path)
	require.NoError(t, snap.Save(sampleState()))

	first, err := snap.Load()
	require.NoError(t, err)
	require.NoError(t, snap.Save(first))

	second, err := snap.Load()
	require.NoError(t, err)
	assert.Equal(t, asJSON(t, first), asJSON(t, second))
}

func TestSave_SobreescribeElSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")
	snap := openTestStore(t, path)

	require.NoError(t, snap.Save(sampleState()))
	empty := entity.DefaultState()
	require.NoError(t, snap.Save(empty))

	loaded, err := snap.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Products, "el slot guarda solo el último snapshot")
}

func TestLoad_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")

	snap := openTestStore(t, path)
	require.NoError(t, snap.Save(sampleState()))
	require.NoError(t, snap.Close())

	reopened := openTestStore(t, path)
	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, "W-001", loaded.Products[0].SKU)
	assert.Equal(t, entity.ThemeDark, loaded.Theme)
}

func TestLoad_SnapshotCorruptoDevuelveDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")

	snap := openTestStore(t, path)
	require.NoError(t, snap.Save(sampleState()))
	require.NoError(t, snap.Close())

	// Corromper el blob directamente en la base
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE snapshots SET data = ?`, []byte("{esto no es json"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened := openTestStore(t, path)
	state, err := reopened.Load()
	require.NoError(t, err, "un snapshot corrupto se recupera en silencio, no propaga error")
	assert.Equal(t, asJSON(t, entity.DefaultState()), asJSON(t, state))
}
