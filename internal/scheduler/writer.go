package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/repository"

	"go.uber.org/zap"
)

// HistoryWriter decouples probe loops from the store: appends go through a
// bounded queue and a background worker with retries, so a slow or failing
// database never blocks a scheduler tick. When the queue saturates the
// oldest entry is dropped first.
type HistoryWriter struct {
	logger  *zap.Logger
	repo    repository.HistoryRepository
	queue   chan model.CheckResult
	retries int
	backoff time.Duration

	stopOnce sync.Once
	done     chan struct{}
}

func NewHistoryWriter(logger *zap.Logger, repo repository.HistoryRepository, queueSize int, retries int, backoff time.Duration) *HistoryWriter {
	if queueSize < 1 {
		queueSize = 1024
	}
	if retries < 1 {
		retries = 1
	}
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	return &HistoryWriter{
		logger:  logger,
		repo:    repo,
		queue:   make(chan model.CheckResult, queueSize),
		retries: retries,
		backoff: backoff,
		done:    make(chan struct{}),
	}
}

func (w *HistoryWriter) Start() {
	go w.run()
}

// Enqueue never blocks the caller.
func (w *HistoryWriter) Enqueue(result model.CheckResult) {
	select {
	case w.queue <- result:
		return
	default:
	}
	// full: make room by dropping the oldest pending entry
	select {
	case old := <-w.queue:
		w.logger.Warn("history queue full, dropping oldest result",
			zap.Int("monitor_id", old.MonitorID),
			zap.Time("checked_at", old.CheckedAt))
	default:
	}
	select {
	case w.queue <- result:
	default:
		w.logger.Warn("history queue full, dropping result",
			zap.Int("monitor_id", result.MonitorID))
	}
}

// Stop flushes whatever is queued and returns when the worker exits.
func (w *HistoryWriter) Stop() {
	w.stopOnce.Do(func() {
		close(w.queue)
	})
	<-w.done
}

func (w *HistoryWriter) run() {
	defer close(w.done)
	for result := range w.queue {
		w.write(result)
	}
}

func (w *HistoryWriter) write(result model.CheckResult) {
	backoff := w.backoff
	var err error
	for attempt := 1; attempt <= w.retries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = w.repo.Append(ctx, result)
		cancel()
		if err == nil {
			return
		}
		if attempt < w.retries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	w.logger.Error("failed to persist check result, dropping",
		zap.Error(err),
		zap.Int("monitor_id", result.MonitorID),
		zap.Time("checked_at", result.CheckedAt))
}
