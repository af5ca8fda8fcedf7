package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	out := &Workers{}
	for _, w := range ws {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type overdueWorker struct {
	job      service.OverdueJob
	interval time.Duration
}

// NewOverdueWorker runs job every interval. It returns nil when job is nil,
// which NewWorkers skips.
func NewOverdueWorker(job service.OverdueJob, interval time.Duration) Worker {
	if job == nil {
		return nil
	}
	return &overdueWorker{job: job, interval: interval}
}

func (o *overdueWorker) Run(ctx context.Context) {
	o.job.Start(ctx, o.interval)
}

func (o *overdueWorker) Stop() {
	o.job.Stop()
}
