package handler

import (
	"sync"

	"steambot/internal/domain"
)

// StateStore keeps per-chat conversation state. A chat without an entry is
// idle.
type StateStore struct {
	mu     sync.Mutex
	states map[int64]domain.StateData
}

// NewStateStore creates an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[int64]domain.StateData)}
}

// Set arms a state for the chat, replacing any previous one.
func (s *StateStore) Set(chatID int64, data domain.StateData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = data
}

// Take atomically removes and returns the chat's state. Removing before
// handling keeps a failed handler from re-triggering on the next message,
// and two concurrent messages for one chat cannot both win the same state.
func (s *StateStore) Take(chatID int64) (domain.StateData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.states[chatID]
	if ok {
		delete(s.states, chatID)
	}
	return data, ok
}

// Clear drops any armed state for the chat.
func (s *StateStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}
