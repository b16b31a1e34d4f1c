package otpstore

import (
	"crypto/subtle"
	"sync"
	"time"

	"autoservice/internal/usecase/interfaces"
)

type entry struct {
	code      string
	createdAt time.Time
}

// Store is an in-memory one-time code store keyed by (phone, role).
// A zero ttl keeps codes until they are consumed or overwritten.
type Store struct {
	mu    sync.Mutex
	codes map[interfaces.CodeKey]entry
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.ICodeStore = (*Store)(nil)

func New(ttl time.Duration) *Store {
	return NewWithClock(ttl, time.Now)
}

func NewWithClock(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		codes: make(map[interfaces.CodeKey]entry),
		ttl:   ttl,
		now:   now,
	}
}

func (s *Store) Put(key interfaces.CodeKey, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[key] = entry{code: code, createdAt: s.now()}
}

func (s *Store) Get(key interfaces.CodeKey) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.codes[key]
	if !ok {
		return "", false
	}
	if s.expired(e, s.now()) {
		delete(s.codes, key)
		return "", false
	}
	return e.code, true
}

// ConsumeIfMatch removes the code for key only when it equals code. A
// mismatch leaves the code in place.
func (s *Store) ConsumeIfMatch(key interfaces.CodeKey, code string) (found, matched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.codes[key]
	if !ok {
		return false, false
	}
	if s.expired(e, s.now()) {
		delete(s.codes, key)
		return false, false
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(code)) != 1 {
		return true, false
	}
	delete(s.codes, key)
	return true, true
}

func (s *Store) Delete(key interfaces.CodeKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, key)
}

// Sweep drops expired codes and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.codes {
		if s.expired(e, now) {
			delete(s.codes, k)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

func (s *Store) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.createdAt) >= s.ttl
}
