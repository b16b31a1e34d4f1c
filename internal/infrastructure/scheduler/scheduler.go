package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// Sweeper removes stale entries and reports how many it dropped.
type Sweeper interface {
	Sweep() int
}

type Scheduler struct {
	s *gocron.Scheduler
}

func New(location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{s: gocron.NewScheduler(location)}
}

// EverySweep registers a periodic sweep job. Non-positive intervals are
// rejected.
func (sc *Scheduler) EverySweep(name string, interval time.Duration, target Sweeper) error {
	if interval <= 0 {
		return fmt.Errorf("scheduler: invalid interval %s for %s", interval, name)
	}
	_, err := sc.s.Every(interval).Tag(name).Do(func() {
		if n := target.Sweep(); n > 0 {
			log.Infof("[scheduler][%s] swept entries=%d", name, n)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduler: register %s: %w", name, err)
	}
	return nil
}

func (sc *Scheduler) StartAsync() {
	sc.s.StartAsync()
}

func (sc *Scheduler) Stop() {
	sc.s.Stop()
}

func (sc *Scheduler) Jobs() int {
	return len(sc.s.Jobs())
}
