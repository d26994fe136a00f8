package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Send(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) received() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

type blockingSink struct {
	release chan struct{}

	mu  sync.Mutex
	got int
}

func (s *blockingSink) Send(context.Context, Event) error {
	s.mu.Lock()
	s.got++
	s.mu.Unlock()
	<-s.release
	return nil
}

func (s *blockingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.got
}

func Test_OnFanout_ShouldDeliverToAllAndJoinErrors(t *testing.T) {
	ok := &recordingSink{}
	broken := &recordingSink{err: errors.New("offline")}

	err := Fanout{broken, ok, LogSink{}}.Send(context.Background(), Event{Kind: Added, Message: "m"})

	assert.Error(t, err)
	assert.Len(t, ok.received(), 1)
	assert.Len(t, broken.received(), 1)
}

func Test_OnFanoutWithoutErrors_ShouldReturnNil(t *testing.T) {
	err := Fanout{&recordingSink{}, LogSink{}}.Send(context.Background(), Event{Kind: Deleted})

	assert.NoError(t, err)
}

func Test_OnAsyncNotify_ShouldDeliverInOrder(t *testing.T) {
	sink := &recordingSink{}
	a := NewAsync(sink, 4)

	a.Notify(Added, "Added $12.50 for Food & Dining")
	a.Notify(Deleted, "Expense has been removed from your log")
	a.Close()

	events := sink.received()
	require.Len(t, events, 2)
	assert.Equal(t, Added, events[0].Kind)
	assert.Equal(t, "Added $12.50 for Food & Dining", events[0].Message)
	assert.False(t, events[0].At.IsZero())
	assert.Equal(t, Deleted, events[1].Kind)
}

func Test_OnSinkFailure_ShouldNotAffectNotify(t *testing.T) {
	a := NewAsync(&recordingSink{err: errors.New("offline")}, 1)

	assert.NotPanics(t, func() {
		a.Notify(Updated, "Updated expense for $5.00")
	})
	a.Close()
}

func Test_OnFullQueue_ShouldDropWithoutBlocking(t *testing.T) {
	const queueSize = 1
	sink := &blockingSink{release: make(chan struct{})}
	a := NewAsync(sink, queueSize)

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		for i := 0; i < 10; i++ {
			a.Notify(Added, "event")
		}
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		close(sink.release)
		t.Fatal("Notify blocked while the sink was stuck")
	}

	close(sink.release)
	a.Close()
	assert.LessOrEqual(t, sink.count(), queueSize+1)
	assert.GreaterOrEqual(t, sink.count(), 1)
}

func Test_OnNotifyAfterClose_ShouldDropWithoutPanic(t *testing.T) {
	sink := &recordingSink{}
	a := NewAsync(sink, 4)
	a.Notify(Added, "before close")
	a.Close()

	assert.NotPanics(t, func() {
		a.Notify(Deleted, "after close")
		a.Close()
	})
	events := sink.received()
	require.Len(t, events, 1)
	assert.Equal(t, "before close", events[0].Message)
}
