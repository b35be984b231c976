package scheduler

import (
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/filmlane/FilmLane/internal/jobs"
)

// Scheduler enqueues a catalog sync on a fixed interval. The queue's
// deterministic task ID makes overlapping enqueues collapse, so a slow run
// is never doubled up.
type Scheduler struct {
	queue    *jobs.Queue
	interval time.Duration
	stop     chan struct{}
}

func New(queue *jobs.Queue, interval time.Duration) *Scheduler {
	return &Scheduler{
		queue:    queue,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go s.run()
	log.Printf("[sync-scheduler] started (interval=%s)", s.interval)
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) run() {
	// Warm-up delay so the first run doesn't race service startup.
	time.Sleep(30 * time.Second)
	s.trigger()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.trigger()
		case <-s.stop:
			log.Println("[sync-scheduler] stopped")
			return
		}
	}
}

func (s *Scheduler) trigger() {
	_, err := s.queue.EnqueueUnique(jobs.TaskCatalogSync, jobs.SyncPayload{}, jobs.SyncTaskID,
		asynq.MaxRetry(2), asynq.Timeout(30*time.Minute))
	if err != nil {
		log.Printf("[sync-scheduler] enqueue error: %v", err)
	}
}
