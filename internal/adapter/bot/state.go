package bot

import "sync"

// StateStore remembers which chats were asked for a phone number.
type StateStore struct {
	mu       sync.RWMutex
	awaiting map[int64]struct{}
}

func NewStateStore() *StateStore {
	return &StateStore{awaiting: make(map[int64]struct{})}
}

func (s *StateStore) AwaitPhone(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting[chatID] = struct{}{}
}

func (s *StateStore) AwaitingPhone(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.awaiting[chatID]
	return ok
}

func (s *StateStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.awaiting, chatID)
}
