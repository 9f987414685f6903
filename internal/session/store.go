package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Kevolive/evaluapp-dashboard/internal/user"
)

// Store guarda las sesiones en memoria. El candado protege solo el
// registro: cada Sesion pertenece a una única interacción a la vez.
type Store struct {
	mu       sync.RWMutex
	sesiones map[uuid.UUID]*Sesion
}

func NewStore() *Store {
	return &Store{sesiones: make(map[uuid.UUID]*Sesion)}
}

func (s *Store) Crear(rol user.Rol) *Sesion {
	sesion := &Sesion{
		ID:         uuid.New(),
		Rol:        rol,
		Estado:     EstadoVacia,
		Respuestas: make(map[int64]Respuesta),
	}

	s.mu.Lock()
	s.sesiones[sesion.ID] = sesion
	s.mu.Unlock()

	return sesion
}

func (s *Store) Obtener(id uuid.UUID) (*Sesion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sesion, ok := s.sesiones[id]
	return sesion, ok
}

func (s *Store) Eliminar(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sesiones, id)
	s.mu.Unlock()
}
