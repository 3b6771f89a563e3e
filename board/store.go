package board

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/fretdex/model"
)

// Store keeps one Board per API client. Boards are only touched through
// Update and View, which hold the store's lock.
type Store struct {
	mu      sync.Mutex
	library *model.Library
	boards  map[string]*Board
}

func NewStore(lib *model.Library) *Store {
	return &Store{library: lib, boards: make(map[string]*Board)}
}

func (s *Store) Library() *model.Library {
	return s.library
}

func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.boards[id] = New(s.library)
	return id
}

// Update runs fn against the board with the given id. It reports false if
// there is no such board.
func (s *Store) Update(id string, fn func(b *Board)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return false
	}
	fn(b)
	return true
}

// View is Update for callers that only read.
func (s *Store) View(id string, fn func(b *Board)) bool {
	return s.Update(id, fn)
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return false
	}
	delete(s.boards, id)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}
