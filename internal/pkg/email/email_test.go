package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techdigi/hr-backoffice/internal/config"
)

type captureSender struct {
	sent []Message
}

func (c *captureSender) Send(ctx context.Context, msg Message) error {
	c.sent = append(c.sent, msg)
	return nil
}

func TestEmailService_Templates(t *testing.T) {
	sender := &captureSender{}
	svc, err := NewEmailService(sender, "hr@example.com")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, svc.SendPasswordReset(ctx, "asha@example.com", "Asha", "http://app/reset-password/abc", 10*time.Minute))
	require.NoError(t, svc.SendApplicationStatus(ctx, "ravi@example.com", "Ravi", "Go Developer", "Shortlisted"))
	require.NoError(t, svc.SendInquiryAdminNotice(ctx, InquiryNotice{Name: "Meera", Email: "m@example.com", Message: "<b>hi</b>"}))

	require.Len(t, sender.sent, 3)
	assert.Equal(t, "asha@example.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].HTML, "http://app/reset-password/abc")
	assert.Contains(t, sender.sent[0].HTML, "10 minutes")
	assert.Contains(t, sender.sent[1].HTML, "shortlisted")
	assert.Equal(t, "hr@example.com", sender.sent[2].To)
	assert.Contains(t, sender.sent[2].HTML, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestEmailService_AdminNoticeWithoutAdmin(t *testing.T) {
	sender := &captureSender{}
	svc, err := NewEmailService(sender, "")
	require.NoError(t, err)

	require.NoError(t, svc.SendApplicationAdminNotice(context.Background(), ApplicationNotice{JobTitle: "QA"}))
	assert.Empty(t, sender.sent)
}

func TestSMTPSender_SendsOnce(t *testing.T) {
	calls := 0
	s := &SMTPSender{
		cfg: config.MailConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@example.com", FromName: "HR"},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			calls++
			assert.Equal(t, "smtp.example.com:587", addr)
			assert.Equal(t, []string{"a@example.com"}, to)
			assert.True(t, strings.Contains(string(msg), "Subject: Hello\r\n"))
			return nil
		},
	}

	require.NoError(t, s.Send(context.Background(), Message{To: "a@example.com", Subject: "Hello", HTML: "<p>x</p>"}))
	assert.Equal(t, 1, calls)
}

func TestSMTPSender_NoRetryOnFailure(t *testing.T) {
	calls := 0
	s := &SMTPSender{
		cfg: config.MailConfig{Host: "smtp.example.com", Port: 25},
		send: func(string, smtp.Auth, string, []string, []byte) error {
			calls++
			return errors.New("421 try again")
		},
	}

	err := s.Send(context.Background(), Message{To: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "421 try again")
	assert.Equal(t, 1, calls)
}

func TestSMTPSender_SkipsWithoutHost(t *testing.T) {
	s := NewSMTPSender(config.MailConfig{})
	assert.NoError(t, s.Send(context.Background(), Message{To: "a@example.com"}))
}

type fakeSES struct {
	input *ses.SendEmailInput
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	return &ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil
}

func TestSESSender(t *testing.T) {
	api := &fakeSES{}
	s := &SESSender{client: api, source: formatSource("no-reply@example.com", "HR Back Office")}

	require.NoError(t, s.Send(context.Background(), Message{To: "a@example.com", Subject: "Hi", HTML: "<p>x</p>"}))
	assert.Equal(t, "HR Back Office <no-reply@example.com>", aws.ToString(api.input.Source))
	assert.Equal(t, []string{"a@example.com"}, api.input.Destination.ToAddresses)
	assert.Equal(t, "<p>x</p>", aws.ToString(api.input.Message.Body.Html.Data))
}
