package jobs

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"agency-platform.backend/pkg/logger"
)

// VisitSink consumes queued visit events. The activity usecase satisfies it.
type VisitSink interface {
	RecordVisit(ctx context.Context, profileID uuid.UUID, visitorID uuid.NullUUID, ip, userAgent string) error
}

// VisitEvent is one queued profile visit
type VisitEvent struct {
	ProfileID uuid.UUID
	VisitorID uuid.NullUUID
	IP        string
	UserAgent string
}

// ActivityRecorder decouples visit recording from the request path.
// Handlers enqueue without blocking; a single worker goroutine drains the
// queue. When the queue is full the event is dropped and logged, never
// blocking a profile read.
type ActivityRecorder struct {
	sink  VisitSink
	queue chan VisitEvent
	stop  chan struct{}
	wg    sync.WaitGroup
}

const defaultQueueSize = 1024

func NewActivityRecorder(sink VisitSink) *ActivityRecorder {
	return &ActivityRecorder{
		sink:  sink,
		queue: make(chan VisitEvent, defaultQueueSize),
		stop:  make(chan struct{}),
	}
}

// Start launches the worker goroutine
func (r *ActivityRecorder) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
	logger.Info(ctx, "activity recorder started", zap.Int("queue_size", cap(r.queue)))
}

// Stop signals the worker and waits for the queue to drain
func (r *ActivityRecorder) Stop() {
	close(r.stop)
	r.wg.Wait()
}

// Enqueue queues a visit event without blocking. Returns false when the
// event was dropped because the queue is full.
func (r *ActivityRecorder) Enqueue(ctx context.Context, event VisitEvent) bool {
	select {
	case r.queue <- event:
		return true
	default:
		logger.Warn(ctx, "visit event dropped, queue full",
			zap.String("profile_id", event.ProfileID.String()))
		return false
	}
}

func (r *ActivityRecorder) run(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case event := <-r.queue:
			r.process(ctx, event)
		case <-ctx.Done():
			logger.Info(context.Background(), "activity recorder stopped, context cancelled")
			return
		case <-r.stop:
			r.drain(ctx)
			logger.Info(ctx, "activity recorder stopped")
			return
		}
	}
}

// drain flushes events still queued at shutdown
func (r *ActivityRecorder) drain(ctx context.Context) {
	for {
		select {
		case event := <-r.queue:
			r.process(ctx, event)
		default:
			return
		}
	}
}

func (r *ActivityRecorder) process(ctx context.Context, event VisitEvent) {
	if err := r.sink.RecordVisit(ctx, event.ProfileID, event.VisitorID, event.IP, event.UserAgent); err != nil {
		logger.Error(ctx, "failed to record queued visit",
			zap.String("profile_id", event.ProfileID.String()),
			zap.Error(err),
		)
	}
}
