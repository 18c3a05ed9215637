package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SendEmailAPI é o subconjunto do cliente SES v2 usado no envio
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESSender struct {
	client SendEmailAPI
}

func NewSESSender(awsCfg aws.Config) *SESSender {
	return &SESSender{client: sesv2.NewFromConfig(awsCfg)}
}

func NewSESSenderWithClient(client SendEmailAPI) *SESSender {
	return &SESSender{client: client}
}

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress(msg)),
		Destination:      &types.Destination{ToAddresses: msg.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("type"), Value: aws.String("weekly_report")},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return errors.Wrap(err, "email: falha no envio pelo SES")
	}

	logrus.WithFields(logrus.Fields{
		"message_id": aws.ToString(result.MessageId),
		"to":         msg.To,
	}).Debug("email: mensagem enviada pelo SES")

	return nil
}

func fromAddress(msg Message) string {
	if msg.FromName == "" {
		return msg.From
	}
	return fmt.Sprintf("%s <%s>", msg.FromName, msg.From)
}
