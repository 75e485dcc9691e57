package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/moneytech/minesweeper/game"
)

// Session is one tracked game plus the lock that serializes access to
// it; the engine itself is single-threaded by contract.
type Session struct {
	ID string

	mu    sync.Mutex
	board *game.Board
}

// Lock takes the session's board for exclusive use. Callers must hold the
// lock around every read or move and release it with Unlock.
func (s *Session) Lock() *game.Board {
	s.mu.Lock()
	return s.board
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Store holds live sessions in memory, keyed by uuid. Everything is lost
// on restart; this is a play surface, not a persistence layer.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Add registers a board under a fresh uuid.
func (s *Store) Add(board *game.Board) *Session {
	session := &Session{ID: uuid.NewString(), board: board}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

// Get looks up a session by id.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Len reports how many sessions are live.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
