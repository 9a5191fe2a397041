// Package notify posts operational messages for the back-office team.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
)

type Notifier interface {
	Info(ctx context.Context, message string) error
	Error(ctx context.Context, message string) error
}

type poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client         poster
	infoChannelID  string
	errorChannelID string
}

// New returns a Slack notifier, or a no-op one when token is empty.
func New(token, infoChannelID, errorChannelID string) Notifier {
	if token == "" {
		slog.Warn("Slack token not configured, ops notifications disabled")
		return Nop{}
	}
	return &Slack{
		client:         slack.New(token),
		infoChannelID:  infoChannelID,
		errorChannelID: errorChannelID,
	}
}

func (s *Slack) post(ctx context.Context, channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(ctx context.Context, message string) error {
	return s.post(ctx, s.infoChannelID, message)
}

func (s *Slack) Error(ctx context.Context, message string) error {
	return s.post(ctx, s.errorChannelID, message)
}

// Nop drops every message.
type Nop struct{}

func (Nop) Info(context.Context, string) error  { return nil }
func (Nop) Error(context.Context, string) error { return nil }
