package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper is a store that can drop its own expired entries.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Janitor runs Sweep on a cron schedule.
type Janitor struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  *zap.SugaredLogger
}

// NewJanitor validates schedule (standard cron spec or "@every 1h").
func NewJanitor(sweeper Sweeper, schedule string, logger *zap.Logger) (*Janitor, error) {
	j := &Janitor{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		sweeper: sweeper,
		logger:  logger.Sugar(),
	}
	if _, err := j.cron.AddFunc(schedule, j.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return j, nil
}

// RunOnce performs a single sweep.
func (j *Janitor) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.sweeper.Sweep(ctx)
	if err != nil {
		j.logger.Warnw("Cache sweep failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.Infow("Cache sweep removed expired entries", "removed", n)
	}
}

func (j *Janitor) Start() { j.cron.Start() }

// Stop waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}
