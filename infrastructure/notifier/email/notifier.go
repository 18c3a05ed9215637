package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

// EmailNotifier renderiza e envia o relatório de um cliente
type EmailNotifier struct {
	renderer   *Renderer
	sender     Sender
	from       string
	fromName   string
	recipients []string
}

func NewNotifier(cfg *config.Config, renderer *Renderer, sender Sender) *EmailNotifier {
	return &EmailNotifier{
		renderer:   renderer,
		sender:     sender,
		from:       cfg.Email.From,
		fromName:   cfg.Email.FromName,
		recipients: cfg.Email.Recipients,
	}
}

// Notify envia o relatório; destinatários do cliente têm prioridade sobre os da configuração
func (n *EmailNotifier) Notify(ctx context.Context, report domain.ClientReport) error {
	recipients := report.Client.Recipients
	if len(recipients) == 0 {
		recipients = n.recipients
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	html, err := n.renderer.Render(report)
	if err != nil {
		return err
	}

	msg := Message{
		From:     n.from,
		FromName: n.fromName,
		To:       recipients,
		Subject:  report.Subject(),
		HTML:     html,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("envio do relatório: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"client":     report.Client.Name,
		"recipients": len(recipients),
		"subject":    msg.Subject,
	}).Info("email: relatório enviado")

	return nil
}

// NewSender escolhe o provedor configurado
func NewSender(cfg *config.Config, awsCfg aws.Config) Sender {
	if cfg.Email.Provider == ProviderSES {
		return NewSESSender(awsCfg)
	}
	return NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPassword)
}
