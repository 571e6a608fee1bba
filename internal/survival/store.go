package survival

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDuplicateEntity = errors.New("entity already in store")

// Store holds the entities of one world. It is not safe for concurrent use;
// all access happens on the tick goroutine.
type Store struct {
	entities map[uuid.UUID]*Entity
	order    []uuid.UUID
}

func NewStore() *Store {
	return &Store{entities: map[uuid.UUID]*Entity{}}
}

func (s *Store) Add(e *Entity) error {
	if _, ok := s.entities[e.ID]; ok {
		return ErrDuplicateEntity
	}
	s.entities[e.ID] = e
	s.order = append(s.order, e.ID)
	return nil
}

func (s *Store) Get(id uuid.UUID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Valid reports whether id still refers to an entity in the store.
func (s *Store) Valid(id uuid.UUID) bool {
	_, ok := s.entities[id]
	return ok
}

func (s *Store) Remove(id uuid.UUID) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Each visits entities in insertion order.
func (s *Store) Each(fn func(*Entity)) {
	for _, id := range s.order {
		fn(s.entities[id])
	}
}

func (s *Store) Len() int {
	return len(s.entities)
}
