package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
	"max.ks1230/daily-expenses/internal/model/messages"
	"max.ks1230/daily-expenses/internal/model/notify"
)

const (
	defaultUpdateOffset = 0
	updateTimeout       = 60
	timeoutSeconds      = 5
)

type config interface {
	Token() string
	OwnerID() int64
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

// Client talks to the single owner of the tracker over Telegram.
type Client struct {
	client  *tgbotapi.BotAPI
	ownerID int64
}

func New(config config) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(config.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	logger.Info("authorized on telegram", zap.String("bot", client.Self.UserName))
	return &Client{client: client, ownerID: config.OwnerID()}, nil
}

func (c *Client) SendMessage(text string, userID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(userID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// Send delivers a notification to the owner chat.
func (c *Client) Send(_ context.Context, event notify.Event) error {
	return c.SendMessage(event.Message, c.ownerID)
}

func (c *Client) ListenUpdates(ctx context.Context, handler messageHandler) error {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeout

	updates := c.client.GetUpdatesChan(u)
	defer c.client.StopReceivingUpdates()

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.listenOnce(ctx, update, handler)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, handler messageHandler) {
	if update.Message == nil {
		return
	}
	if update.Message.Chat.ID != c.ownerID {
		logger.Warn("ignoring message from a stranger", zap.Int64("chat", update.Message.Chat.ID))
		return
	}
	logger.Info(update.Message.Text, zap.Int64("chat", update.Message.Chat.ID))

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := handler.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		UserID: update.Message.Chat.ID,
	})
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
