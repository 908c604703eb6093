package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func BenchmarkEnqueue(b *testing.B) {
	pool := NewPool(PoolConfig{WorkerCount: 4, QueueSize: 4096, Logger: zap.NewNop()})
	pool.Start(context.Background())
	defer pool.Stop()

	job := Job{Name: "noop", Run: func(context.Context) error { return nil }}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool.Enqueue(job)
	}
}
