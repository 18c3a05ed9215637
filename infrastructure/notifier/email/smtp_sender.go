package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender envia pelo servidor SMTP configurado; smtp.SendMail negocia STARTTLS quando disponível
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.password, s.host)
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	if err := s.sendMail(addr, auth, msg.From, msg.To, buildMIME(msg, s.now())); err != nil {
		return errors.Wrapf(err, "email: falha no envio SMTP por %s", addr)
	}
	return nil
}

func buildMIME(msg Message, date time.Time) []byte {
	var b bytes.Buffer

	from := msg.From
	if msg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", msg.FromName), msg.From)
	}

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return b.Bytes()
}
