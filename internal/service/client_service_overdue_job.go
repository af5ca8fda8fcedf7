package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

// DefaultOverdueSweepInterval is used when the job is started with a
// non-positive interval.
const DefaultOverdueSweepInterval = time.Minute

type overdueJob struct {
	followUps FollowUpService

	// run serializes Start and Stop; mu guards cancel.
	run    sync.Mutex
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOverdueJob creates an OverdueJob that calls followUps.MarkOverdue on a
// ticker. The job is idle until Start is called.
func NewOverdueJob(followUps FollowUpService) OverdueJob {
	return &overdueJob{followUps: followUps}
}

func (j *overdueJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultOverdueSweepInterval
	}

	j.run.Lock()
	defer j.run.Unlock()

	j.stopLocked()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.sweep(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

func (j *overdueJob) Stop() {
	j.run.Lock()
	defer j.run.Unlock()

	j.stopLocked()
}

func (j *overdueJob) stopLocked() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *overdueJob) sweep(ctx context.Context) {
	if _, err := j.followUps.MarkOverdue(ctx); err != nil && ctx.Err() == nil {
		logger.FromContext(ctx).Err(err).Str("func", "overdueJob.sweep").Msg("overdue sweep failed")
	}
}
