package email

import (
	"context"
	"errors"
)

const (
	ProviderSES  = "ses"
	ProviderSMTP = "smtp"
)

var ErrNoRecipients = errors.New("email: nenhum destinatário configurado")

// Message é um e-mail HTML pronto para envio
type Message struct {
	From     string
	FromName string
	To       []string
	Subject  string
	HTML     string
}

// Sender entrega uma mensagem por um provedor
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
