package service

import (
	"context"
	"sync"
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
)

type configRefreshJob struct {
	synchronizer ConfigSynchronizer
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConfigRefreshJob creates a configRefreshJob that calls
// synchronizer.Bootstrap on a ticker. The job is idle until Start is called.
func NewConfigRefreshJob(synchronizer ConfigSynchronizer, log *logger.Logger) ConfigRefreshJob {
	return &configRefreshJob{synchronizer: synchronizer, logger: log.Component("config-refresh")}
}

// Start implements ConfigRefreshJob. It stops any previously running loop,
// then launches a goroutine that bootstraps every interval until ctx is
// cancelled or Stop is called.
func (j *configRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		j.logger.Debug().Msg("refresh disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.synchronizer.Bootstrap(jobCtx)
			}
		}
	}()
}

// Stop implements ConfigRefreshJob.
func (j *configRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
