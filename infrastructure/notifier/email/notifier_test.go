package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/config"
)

type fakeSender struct {
	messages []Message
	err      error
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	f.messages = append(f.messages, msg)
	return f.err
}

func testEmailConfig() *config.Config {
	return &config.Config{Email: config.Email{
		From:       "reports@example.com",
		FromName:   "Reports",
		Recipients: []string{"team@example.com"},
	}}
}

func TestEmailNotifier_Notify(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name       string
		cfg        *config.Config
		recipients []string
		senderErr  error
		validate   func(t *testing.T, sender *fakeSender, err error)
	}{
		{
			name: "Usa destinatários da configuração",
			cfg:  testEmailConfig(),
			validate: func(t *testing.T, sender *fakeSender, err error) {
				require.NoError(t, err)
				require.Len(t, sender.messages, 1)
				msg := sender.messages[0]
				assert.Equal(t, "Acme & Co Weekly Report", msg.Subject)
				assert.Equal(t, []string{"team@example.com"}, msg.To)
				assert.Equal(t, "reports@example.com", msg.From)
				assert.Contains(t, msg.HTML, "<html")
			},
		},
		{
			name:       "Destinatários do cliente têm prioridade",
			cfg:        testEmailConfig(),
			recipients: []string{"client@example.com"},
			validate: func(t *testing.T, sender *fakeSender, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"client@example.com"}, sender.messages[0].To)
			},
		},
		{
			name: "Sem destinatários",
			cfg:  &config.Config{},
			validate: func(t *testing.T, sender *fakeSender, err error) {
				assert.ErrorIs(t, err, ErrNoRecipients)
				assert.Empty(t, sender.messages)
			},
		},
		{
			name:      "Falha do provedor",
			cfg:       testEmailConfig(),
			senderErr: errors.New("connection refused"),
			validate: func(t *testing.T, sender *fakeSender, err error) {
				assert.ErrorContains(t, err, "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{err: tt.senderErr}
			notifier := NewNotifier(tt.cfg, renderer, sender)

			report := testReport()
			report.Client.Recipients = tt.recipients

			err := notifier.Notify(context.Background(), report)
			tt.validate(t, sender, err)
		})
	}
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSender_Send(t *testing.T) {
	api := &fakeSES{}
	sender := NewSESSenderWithClient(api)

	err := sender.Send(context.Background(), Message{
		From: "reports@example.com", FromName: "Reports",
		To: []string{"a@example.com"}, Subject: "Acme Weekly Report", HTML: "<p>hi</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Reports <reports@example.com>", *api.input.FromEmailAddress)
	assert.Equal(t, []string{"a@example.com"}, api.input.Destination.ToAddresses)
	assert.Equal(t, "Acme Weekly Report", *api.input.Content.Simple.Subject.Data)
	assert.Equal(t, "<p>hi</p>", *api.input.Content.Simple.Body.Html.Data)

	api.err = errors.New("MessageRejected")
	assert.ErrorContains(t, sender.Send(context.Background(), Message{To: []string{"a@example.com"}}), "MessageRejected")
}

func TestSMTPSender_Send(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
		gotAuth smtp.Auth
	)
	sender := NewSMTPSender("smtp.example.com", 587, "user", "secret")
	sender.now = func() time.Time { return time.Date(2025, time.April, 22, 7, 0, 0, 0, time.UTC) }
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, string(msg)
		return nil
	}

	err := sender.Send(context.Background(), Message{
		From: "reports@example.com", To: []string{"a@example.com", "b@example.com"},
		Subject: "Acme Weekly Report", HTML: "<p>£1,500.00</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "reports@example.com", gotFrom)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotMsg, "From: reports@example.com\r\n"))
	assert.Contains(t, gotMsg, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, gotMsg, "Subject: Acme Weekly Report\r\n")
	assert.Contains(t, gotMsg, "Content-Type: text/html; charset=\"UTF-8\"")
	assert.True(t, strings.HasSuffix(gotMsg, "\r\n\r\n<p>£1,500.00</p>"))
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", 587, "", "")
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("não deveria enviar")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sender.Send(ctx, Message{}), context.Canceled)
}

func TestNewSender(t *testing.T) {
	cfg := &config.Config{Email: config.Email{Provider: ProviderSES}}
	_, isSES := NewSender(cfg, aws.Config{Region: "eu-west-2"}).(*SESSender)
	assert.True(t, isSES)

	cfg.Email.Provider = ProviderSMTP
	_, isSMTP := NewSender(cfg, aws.Config{}).(*SMTPSender)
	assert.True(t, isSMTP)
}

