// Package store contiene el estado de la aplicación y su API de mutación.
//
// El Store es el único dueño del estado en memoria: los colaboradores leen
// copias vía State() y mutan únicamente a través de los métodos públicos.
// Cada mutación valida, muta, persiste el snapshot completo y notifica a los
// suscriptores, en ese orden. Una validación fallida o un error de persistencia
// dejan el estado exactamente como antes de la llamada.
package store

import (
	"sync"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// Snapshotter carga y guarda el snapshot durable del estado.
type Snapshotter interface {
	Load() (entity.State, error)
	Save(entity.State) error
}

// Listener recibe una copia del estado tras cada mutación exitosa.
type Listener func(entity.State)

type subscriber struct {
	id int
	fn Listener
}

// Store contenedor de estado con API de mutación, consultas derivadas y bus
// de notificaciones. Las mutaciones se serializan con un mutex para conservar
// la semántica de un solo writer con llamadores concurrentes.
type Store struct {
	mu     sync.Mutex
	state  entity.State
	snap   Snapshotter
	log    *logger.Logger
	subs   []subscriber
	nextID int
}

// New construye el Store cargando el último snapshot (o el estado por defecto).
func New(snap Snapshotter, log *logger.Logger) (*Store, error) {
	state, err := snap.Load()
	if err != nil {
		return nil, err
	}
	return &Store{state: state, snap: snap, log: log}, nil
}

// State devuelve una copia del estado actual. Los colaboradores deben tratarla
// como snapshot inmutable hasta la próxima notificación.
func (s *Store) State() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registra un listener que se invoca de forma síncrona, en orden de
// registro, tras cada mutación exitosa. Devuelve la función para desuscribirse.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// commit persiste el estado mutado y notifica. Si la persistencia falla se
// restaura prev, de modo que nunca queda visible un estado no persistido.
// Debe llamarse con el mutex tomado.
func (s *Store) commit(prev entity.State) error {
	if err := s.snap.Save(s.state); err != nil {
		s.state = prev
		return err
	}
	s.notify()
	return nil
}

// notify invoca todos los listeners actuales con una copia del estado.
// Un listener que entra en pánico no impide la ejecución de los demás.
func (s *Store) notify() {
	state := s.state.Clone()
	for _, sub := range s.subs {
		s.invoke(sub, state)
	}
}

func (s *Store) invoke(sub subscriber, state entity.State) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("panic", r).Int("listener", sub.id).Msg("listener falló, se continúa con el resto")
		}
	}()
	sub.fn(state)
}
