package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const somethingWrongMessage = "Sorry, something wrong happened...\n"

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock
type messageSender interface {
	SendMessage(text string, userID int64) error
}

//go:generate minimock -i MessageHandler -o ./mock/message_handler_mock.go -n MessageHandlerMock
type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

// Service answers every incoming message through one transport.
type Service struct {
	sender  messageSender
	handler MessageHandler
}

func NewService(sender messageSender, handler MessageHandler) *Service {
	return &Service{
		sender:  sender,
		handler: handler,
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	cmd, _ := parseCommand(msg.Text)
	cmd = commandLabel(cmd)
	span.SetTag("command", cmd)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(cmd, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		_ = s.sender.SendMessage(somethingWrongMessage+resp, msg.UserID)
		return err
	}
	return s.sender.SendMessage(resp, msg.UserID)
}
