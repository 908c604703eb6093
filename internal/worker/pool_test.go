package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestEnqueueFull(t *testing.T) {
	// Create a pool manually so no workers consume the queue
	cfg := PoolConfig{
		QueueSize: 1,
		Logger:    zap.NewNop(),
	}

	pool := &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}

	noop := func(context.Context) error { return nil }
	if !pool.Enqueue(Job{Name: "first", Run: noop}) {
		t.Fatal("Failed to enqueue first job")
	}

	start := time.Now()
	enqueued := pool.Enqueue(Job{Name: "second", Run: noop})
	duration := time.Since(start)

	if enqueued {
		t.Error("Enqueue should have returned false when queue is full")
	}

	if duration > 10*time.Millisecond {
		t.Errorf("Enqueue took too long (%v), expected immediate return", duration)
	}

	if pool.QueueDepth() != 1 {
		t.Errorf("QueueDepth = %d, want 1", pool.QueueDepth())
	}
}

func TestPoolDrainsOnStop(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 2, QueueSize: 100, Logger: zap.NewNop()})
	pool.Start(context.Background())

	var done atomic.Int32
	for i := 0; i < 50; i++ {
		pool.Enqueue(Job{Name: "count", Run: func(context.Context) error {
			done.Add(1)
			return nil
		}})
	}
	pool.Stop()

	if got := done.Load(); got != 50 {
		t.Errorf("ran %d jobs, want 50", got)
	}
}

func TestPoolSurvivesFailures(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 10, Logger: zap.NewNop()})
	pool.Start(context.Background())

	var after atomic.Bool
	pool.Enqueue(Job{Name: "error", Run: func(context.Context) error { return errors.New("boom") }})
	pool.Enqueue(Job{Name: "panic", Run: func(context.Context) error { panic("boom") }})
	pool.Enqueue(Job{Name: "after", Run: func(context.Context) error {
		after.Store(true)
		return nil
	}})
	pool.Stop()

	if !after.Load() {
		t.Error("job after a failure did not run")
	}
}

func TestJobTimeout(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 1, JobTimeout: 10 * time.Millisecond, Logger: zap.NewNop()})
	pool.Start(context.Background())

	var cancelled atomic.Bool
	pool.Enqueue(Job{Name: "slow", Run: func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			cancelled.Store(true)
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}})
	pool.Stop()

	if !cancelled.Load() {
		t.Error("job context was not cancelled by the timeout")
	}
}

func TestEnqueueAfterStop(t *testing.T) {
	pool := NewPool(PoolConfig{WorkerCount: 1, Logger: zap.NewNop()})
	pool.Start(context.Background())
	pool.Stop()

	if pool.Enqueue(Job{Name: "late", Run: func(context.Context) error { return nil }}) {
		t.Error("Enqueue should fail after Stop")
	}
}

func TestNewPoolDefaults(t *testing.T) {
	pool := NewPool(PoolConfig{})
	if pool.config.WorkerCount != 4 || pool.config.QueueSize != 1000 || pool.config.JobTimeout != 30*time.Second {
		t.Errorf("unexpected defaults: %+v", pool.config)
	}
}
