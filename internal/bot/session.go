package bot

import (
	"sync"

	"github.com/abhisek/learnbot/internal/quiz"
)

// SessionStore holds the pending question per user. It is transient
// process state: a restart drops all pending quizzes, which only costs
// the user a /quiz retype. Injected into the Handler so multiple
// handlers can share one store.
type SessionStore struct {
	mu      sync.Mutex
	pending map[string]*quiz.Question
}

func NewSessionStore() *SessionStore {
	return &SessionStore{pending: make(map[string]*quiz.Question)}
}

// Pending returns the user's pending question, or nil.
func (s *SessionStore) Pending(userID string) *quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[userID]
}

// Set replaces the user's pending question.
func (s *SessionStore) Set(userID string, q *quiz.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userID] = q
}

// Clear drops the user's pending question and reports whether one
// existed. Profile state is never touched here.
func (s *SessionStore) Clear(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[userID]
	delete(s.pending, userID)
	return ok
}

// Len returns the number of users with a pending question.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
