package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestScheduler_EverySweep(t *testing.T) {
	sc := New(nil)

	if err := sc.EverySweep("otp", 0, &countingSweeper{}); err == nil {
		t.Fatalf("expected error for zero interval")
	}

	target := &countingSweeper{}
	if err := sc.EverySweep("otp", 10*time.Millisecond, target); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sc.Jobs() != 1 {
		t.Fatalf("expected 1 job, got %d", sc.Jobs())
	}

	sc.StartAsync()
	defer sc.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for target.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if target.calls.Load() == 0 {
		t.Fatalf("sweep never ran")
	}
}
