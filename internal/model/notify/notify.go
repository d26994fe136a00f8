package notify

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
)

type Kind string

const (
	Added    Kind = "Added"
	Updated  Kind = "Updated"
	Deleted  Kind = "Deleted"
	Exported Kind = "Exported"
)

// Event is the payload delivered to every sink.
type Event struct {
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is fire-and-forget: it never reports delivery problems to the caller.
type Notifier interface {
	Notify(kind Kind, message string)
}

type Sink interface {
	Send(ctx context.Context, event Event) error
}

// Fanout delivers an event to every sink and joins their errors.
type Fanout []Sink

func (f Fanout) Send(ctx context.Context, event Event) error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.Send(ctx, event))
	}
	return errors.Wrap(err, "fanout")
}

// LogSink writes events to the application log.
type LogSink struct{}

func (LogSink) Send(_ context.Context, event Event) error {
	logger.Info("notification",
		zap.String("kind", string(event.Kind)),
		zap.String("message", event.Message))
	return nil
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(Kind, string) {}
