// Package sqlite implementa el slot durable de snapshots sobre SQLite local.
// Todo el estado de la aplicación se serializa como un único blob JSON bajo
// una clave fija; cada Save sobreescribe el slot completo en una sentencia.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// DefaultSlotKey clave del snapshot, heredada del formato v1 de la aplicación.
const DefaultSlotKey = "inventory_app_v1"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    key        TEXT PRIMARY KEY,
    data       BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

// SnapshotStore guarda y recupera el snapshot completo del estado.
// SQLite en modo WAL con un único writer: un UPSERT por mutación es atómico,
// nunca se observa una escritura parcial.
type SnapshotStore struct {
	db  *sql.DB
	key string
	log *logger.Logger
}

// Open abre (o crea) la base SQLite en path y prepara la tabla de snapshots.
// key identifica el slot; si está vacío se usa DefaultSlotKey.
func Open(path, key string, log *logger.Logger) (*SnapshotStore, error) {
	if key == "" {
		key = DefaultSlotKey
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("conectar a la base de datos: %w", err)
	}

	// SQLite solo soporta un writer a la vez; limitar el pool evita SQLITE_BUSY
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("aplicar %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}

	return &SnapshotStore{db: db, key: key, log: log}, nil
}

// Load lee el último snapshot guardado. Si no existe, o el blob guardado no
// se puede decodificar, devuelve el estado por defecto: un snapshot corrupto
// se trata como ausente en lugar de propagar el error de decodificación.
func (s *SnapshotStore) Load() (entity.State, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, s.key).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		return entity.DefaultState(), nil
	case err != nil:
		return entity.State{}, fmt.Errorf("leer snapshot: %w", err)
	}

	var state entity.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("snapshot corrupto, usando estado por defecto")
		return entity.DefaultState(), nil
	}
	normalize(&state)
	return state, nil
}

// Save serializa el estado completo y sobreescribe el slot.
func (s *SnapshotStore) Save(state entity.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.key, data, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

// Close cierra la conexión a la base.
func (s *SnapshotStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// normalize repara colecciones nil de snapshots antiguos o editados a mano
// para que el resto del código pueda asumir slices no nil.
func normalize(state *entity.State) {
	if state.Products == nil {
		state.Products = []entity.Product{}
	}
	if state.Categories == nil {
		state.Categories = []entity.Category{}
	}
	if state.Movements == nil {
		state.Movements = []entity.Movement{}
	}
	if state.Theme == "" {
		state.Theme = entity.ThemeLight
	}
}
