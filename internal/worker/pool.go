// Package worker implements the buffered worker pool that warms the cache.
// Jobs run off the request path so the first request for a team, venue or
// season is served from the cache:
// - Backpressure handling via load shedding
// - Per-job timeouts
// - Graceful shutdown that drains queued work
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crickstats_warm_jobs_enqueued_total",
		Help: "Total number of warm jobs enqueued",
	})

	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crickstats_warm_jobs_processed_total",
		Help: "Total number of warm jobs completed successfully",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crickstats_warm_jobs_failed_total",
		Help: "Total number of warm jobs that returned an error or panicked",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "crickstats_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crickstats_warm_job_duration_seconds",
		Help:    "Duration of warm jobs",
		Buckets: prometheus.DefBuckets,
	})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crickstats_warm_jobs_load_shed_total",
		Help: "Total number of warm jobs dropped because the queue was full",
	})
)

// Job is a named unit of work. Run receives a context that is cancelled
// when the pool shuts down or the job times out.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	JobTimeout  time.Duration
	Logger      *zap.Logger
}

// Pool runs jobs on a fixed set of workers
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop closes the queue, lets workers drain what is already queued and
// waits for them to exit.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
	queueDepth.Set(0)
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a job without blocking. It returns false when the queue is
// full or the pool has stopped.
func (p *Pool) Enqueue(job Job) (ok bool) {
	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue job (pool stopped)", "job", job.Name, "error", r)
			ok = false
		}
	}()

	select {
	case p.jobQueue <- job:
		jobsEnqueued.Inc()
		return true
	default:
		p.logger.Warnw("Worker queue full, dropping job", "job", job.Name)
		jobsLoadShed.Inc()
		return false
	}
}

// EnqueueAll enqueues jobs in order and reports how many were accepted.
func (p *Pool) EnqueueAll(jobs []Job) int {
	n := 0
	for _, j := range jobs {
		if p.Enqueue(j) {
			n++
		}
	}
	return n
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.run(id, job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(id int, job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.config.JobTimeout)
	defer cancel()

	start := time.Now()
	err := safeRun(ctx, job)
	jobDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		p.logger.Errorw("Warm job failed",
			"worker", id,
			"job", job.Name,
			"error", err,
		)
		jobsFailed.Inc()
		return
	}
	p.logger.Debugw("Warm job done", "worker", id, "job", job.Name, "duration", time.Since(start))
	jobsProcessed.Inc()
}

func safeRun(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
	}()
	return job.Run(ctx)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
