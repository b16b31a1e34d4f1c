package otpstore

import (
	"sync"
	"testing"
	"time"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var workerKey = interfaces.CodeKey{Phone: "+79991234567", Role: entities.RoleWorker}

func TestStore_LastWriteWins(t *testing.T) {
	s := New(0)
	s.Put(workerKey, "111111")
	s.Put(workerKey, "222222")

	code, ok := s.Get(workerKey)
	if !ok || code != "222222" {
		t.Fatalf("expected latest code, got %q %v", code, ok)
	}

	adminKey := interfaces.CodeKey{Phone: workerKey.Phone, Role: entities.RoleAdmin}
	if _, ok := s.Get(adminKey); ok {
		t.Fatalf("codes must be scoped by role")
	}

	s.Delete(workerKey)
	if _, ok := s.Get(workerKey); ok {
		t.Fatalf("expected code to be deleted")
	}
}

func TestStore_TTL(t *testing.T) {
	c := &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := NewWithClock(5*time.Minute, c.Now)

	s.Put(workerKey, "123456")
	c.Advance(4 * time.Minute)
	if _, ok := s.Get(workerKey); !ok {
		t.Fatalf("code should still be valid")
	}

	c.Advance(time.Minute)
	if _, ok := s.Get(workerKey); ok {
		t.Fatalf("code should have expired")
	}
}

func TestStore_Sweep(t *testing.T) {
	c := &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := NewWithClock(time.Minute, c.Now)

	s.Put(workerKey, "1")
	c.Advance(2 * time.Minute)
	s.Put(interfaces.CodeKey{Phone: "+79990000000", Role: entities.RoleAdmin}, "2")

	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 remaining, got %d", s.Len())
	}

	if n := New(0).Sweep(); n != 0 {
		t.Fatalf("no-ttl store never sweeps, got %d", n)
	}
}

func TestStore_Concurrent(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Put(workerKey, "000000")
			s.Get(workerKey)
			s.Sweep()
		}()
	}
	wg.Wait()
	if s.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", s.Len())
	}
}

func TestStore_ConsumeIfMatch(t *testing.T) {
	s := New(0)

	if found, _ := s.ConsumeIfMatch(workerKey, "123456"); found {
		t.Fatalf("empty store must report no code")
	}

	s.Put(workerKey, "123456")
	found, matched := s.ConsumeIfMatch(workerKey, "654321")
	if !found || matched {
		t.Fatalf("expected mismatch, got found=%v matched=%v", found, matched)
	}
	if _, ok := s.Get(workerKey); !ok {
		t.Fatalf("a mismatch must keep the code")
	}

	found, matched = s.ConsumeIfMatch(workerKey, "123456")
	if !found || !matched {
		t.Fatalf("expected match, got found=%v matched=%v", found, matched)
	}
	if found, _ := s.ConsumeIfMatch(workerKey, "123456"); found {
		t.Fatalf("a consumed code must not be accepted again")
	}
}

func TestStore_ConsumeIfMatchExpired(t *testing.T) {
	c := &clock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := NewWithClock(time.Minute, c.Now)

	s.Put(workerKey, "123456")
	c.Advance(time.Minute)
	if found, matched := s.ConsumeIfMatch(workerKey, "123456"); found || matched {
		t.Fatalf("expired code accepted: found=%v matched=%v", found, matched)
	}
	if s.Len() != 0 {
		t.Fatalf("expired code should be dropped")
	}
}

func TestStore_ConsumeIfMatchSingleUse(t *testing.T) {
	for round := 0; round < 200; round++ {
		s := New(0)
		s.Put(workerKey, "123456")

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, matched := s.ConsumeIfMatch(workerKey, "123456"); matched {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		if accepted != 1 {
			t.Fatalf("round %d: code accepted %d times", round, accepted)
		}
	}
}
