package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

type recordingPoster struct {
	channels []string
	err      error
}

func (r *recordingPoster) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	r.channels = append(r.channels, channelID)
	return channelID, "1", r.err
}

func TestSlackRoutesByChannel(t *testing.T) {
	p := &recordingPoster{}
	s := &Slack{client: p, infoChannelID: "C-INFO", errorChannelID: "C-ERR"}

	assert.NoError(t, s.Info(context.Background(), "done"))
	assert.NoError(t, s.Error(context.Background(), "failed"))
	assert.Equal(t, []string{"C-INFO", "C-ERR"}, p.channels)
}

func TestSlackSkipsUnsetChannel(t *testing.T) {
	p := &recordingPoster{}
	s := &Slack{client: p, infoChannelID: "C-INFO"}

	assert.NoError(t, s.Error(context.Background(), "failed"))
	assert.Empty(t, p.channels)
}

func TestSlackWrapsErrors(t *testing.T) {
	boom := errors.New("channel_not_found")
	s := &Slack{client: &recordingPoster{err: boom}, infoChannelID: "C-INFO"}

	assert.ErrorIs(t, s.Info(context.Background(), "x"), boom)
}

func TestNewWithoutToken(t *testing.T) {
	assert.IsType(t, Nop{}, New("", "a", "b"))
}
