package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"max.ks1230/daily-expenses/internal/model/messages"
)

type handlerMock struct {
	mock.Mock
}

func (m *handlerMock) HandleIncomingMessage(ctx context.Context, msg messages.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func Test_OnInputLines_ShouldHandleEachCommand(t *testing.T) {
	in := strings.NewReader("/totals\n\n/list\n")
	out := &bytes.Buffer{}
	handler := &handlerMock{}
	handler.On("HandleIncomingMessage", mock.Anything, messages.Message{Text: "/totals"}).Return(nil).Once()
	handler.On("HandleIncomingMessage", mock.Anything, messages.Message{Text: "/list"}).Return(nil).Once()

	err := New(in, out).ListenLines(context.Background(), handler)

	require.NoError(t, err)
	handler.AssertExpectations(t)
	assert.Equal(t, "> > > > ", out.String())
}

func Test_OnSendMessage_ShouldPrintLine(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, New(strings.NewReader(""), out).SendMessage("Deleted", 0))

	assert.Equal(t, "Deleted\n", out.String())
}
