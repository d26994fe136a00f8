package amqp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-expenses/internal/model/notify"
)

type channelMock struct {
	mock.Mock
}

func (m *channelMock) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *channelMock) Close() error {
	return m.Called().Error(0)
}

func Test_OnSend_ShouldPublishToExchange(t *testing.T) {
	ch := &channelMock{}
	at := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	ch.On("PublishWithContext", mock.Anything, "expenses", "expenses.events", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			msg := args.Get(5).(amqp091.Publishing)
			assert.Equal(t, "application/json", msg.ContentType)
			assert.Equal(t, "Exported", msg.Type)
			var got notify.Event
			require.NoError(t, json.Unmarshal(msg.Body, &got))
			assert.Equal(t, notify.Exported, got.Kind)
			assert.Equal(t, "Exported 3 expenses to CSV", got.Message)
		}).
		Return(nil).Once()
	ch.On("Close").Return(nil)
	p := newPublisher(ch, "expenses", "expenses.events")

	err := p.Send(context.Background(), notify.Event{Kind: notify.Exported, Message: "Exported 3 expenses to CSV", At: at})

	assert.NoError(t, err)
	p.Close()
	ch.AssertExpectations(t)
}

func Test_OnPublishFailure_ShouldReturnError(t *testing.T) {
	ch := &channelMock{}
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed"))
	p := newPublisher(ch, "expenses", "expenses.events")

	err := p.Send(context.Background(), notify.Event{Kind: notify.Added})

	assert.Error(t, err)
}
