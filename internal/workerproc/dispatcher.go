package workerproc

import (
	"context"
	"sync"
	"time"

	"vibe-backend/internal/shared/metrics"
	"vibe-backend/internal/shared/telemetry"
)

// Dispatcher consumes queue bodies and runs them through the processor with
// bounded concurrency.
type Dispatcher struct {
	Messages    <-chan string
	Processor   Processor
	Concurrency int

	wg sync.WaitGroup
}

// Run consumes messages until the channel closes or the context is done.
// Each message is processed on its own goroutine, gated by a semaphore.
func (d *Dispatcher) Run(ctx context.Context) {
	concurrency := d.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	telemetry.Info("worker.started", map[string]any{"concurrency": concurrency})

	for {
		select {
		case <-ctx.Done():
			return
		case body, ok := <-d.Messages:
			if !ok {
				return
			}
			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			d.wg.Add(1)
			go func(body string) {
				defer d.wg.Done()
				defer func() { <-sem }()
				d.dispatch(ctx, body)
			}(body)
		}
	}
}

// Drain waits for in-flight jobs to finish, up to the given timeout. It
// reports whether all jobs completed in time.
func (d *Dispatcher) Drain(timeout time.Duration) bool {
	waitDone := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, body string) {
	msg, meta, err := ParseMessage(body)
	if err != nil {
		metrics.IncAnalysisJobsDiscarded()
		telemetry.Error("worker.analysis.discarded", map[string]any{
			"error":       err.Error(),
			"body_len":    meta.BodyLen,
			"body_sha256": meta.BodySHA,
		})
		return
	}

	metrics.IncAnalysisJobsReceived()
	telemetry.Info("worker.analysis.received", map[string]any{
		"repositoryId": msg.RepositoryID,
		"request_id":   msg.RequestID,
	})

	if err := HandleMessage(ctx, d.Processor, body); err != nil {
		telemetry.Error("worker.analysis.failed", map[string]any{
			"repositoryId": msg.RepositoryID,
			"request_id":   msg.RequestID,
			"error":        err.Error(),
		})
		return
	}

	telemetry.Info("worker.analysis.completed", map[string]any{
		"repositoryId": msg.RepositoryID,
		"request_id":   msg.RequestID,
	})
}
