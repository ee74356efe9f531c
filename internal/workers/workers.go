package workers

import (
	"context"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the background workers of the client. The config
// refresh worker is only registered when cfg.RefreshInterval is positive.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	w := &Workers{}
	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, &configRefreshWorker{
			job:      services.ConfigRefreshJob,
			interval: cfg.RefreshInterval,
		})
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

type configRefreshWorker struct {
	job      service.ConfigRefreshJob
	interval time.Duration
}

func (c *configRefreshWorker) Run(ctx context.Context) {
	c.job.Start(ctx, c.interval)
}

func (c *configRefreshWorker) Stop() {
	c.job.Stop()
}
