package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/daily-expenses/internal/logger"
	"max.ks1230/daily-expenses/internal/model/messages"
)

const (
	prompt  = "> "
	localID = int64(0)
)

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

// Client reads commands line by line and prints the answers.
type Client struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex
}

func New(in io.Reader, out io.Writer) *Client {
	return &Client{in: in, out: out}
}

func (c *Client) SendMessage(text string, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, text)
	return errors.Wrap(err, "write answer")
}

// ListenLines returns when the input ends or ctx is cancelled.
func (c *Client) ListenLines(ctx context.Context, handler messageHandler) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.printPrompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.Wrap(err, "read input")
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				c.printPrompt()
				continue
			}
			err := handler.HandleIncomingMessage(ctx, messages.Message{Text: line, UserID: localID})
			if err != nil {
				logger.Error("error processing command", zap.Error(err))
			}
			c.printPrompt()
		}
	}
}

func (c *Client) printPrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, prompt)
}
