package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
)

const (
	DefaultQueueSize = 64
	sendTimeout      = 5 * time.Second
)

// Async queues events and hands them to a sink from a background goroutine.
// When the queue is full the event is dropped.
type Async struct {
	sink  Sink
	queue chan Event
	now   func() time.Time

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewAsync(sink Sink, queueSize int) *Async {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	a := &Async{
		sink:  sink,
		queue: make(chan Event, queueSize),
		now:   time.Now,
		done:  make(chan struct{}),
	}
	go a.loop()
	return a
}

func (a *Async) Notify(kind Kind, message string) {
	event := Event{Kind: kind, Message: message, At: a.now()}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		logger.Warn("notifier closed, dropping event",
			zap.String("kind", string(kind)),
			zap.String("message", message))
		return
	}
	select {
	case a.queue <- event:
	default:
		logger.Warn("notification queue full, dropping event",
			zap.String("kind", string(kind)),
			zap.String("message", message))
	}
}

// Close stops accepting events and waits for the queue to drain.
// Events sent after Close are dropped.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
}

func (a *Async) loop() {
	defer close(a.done)
	for event := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := a.sink.Send(ctx, event); err != nil {
			logger.Error("failed to deliver notification",
				zap.String("kind", string(event.Kind)),
				zap.Error(err))
		}
		cancel()
	}
}
