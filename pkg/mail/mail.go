// Package mail delivers cafe suggestion notifications to the administrator
// mailbox over authenticated SMTP with mandatory STARTTLS.
package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"droscher.com/CafeGargoyle/configs"
)

var ErrDelivery = errors.New("suggestion delivery failed")

const (
	suggestionSubject = "New Cafe Addition Request"
	sendTimeout       = 10 * time.Second
)

// Suggestion carries the fields an anonymous visitor submitted. Rating is
// always 0.0; it is included in the message for completeness.
type Suggestion struct {
	Name        string
	Location    string
	ImgURL      string
	CoffeePrice string
	Detail      string
	Rating      float64
}

type Sender interface {
	SendSuggestion(ctx context.Context, suggestion Suggestion) error
}

// SMTPSender mails suggestions from the configured account to itself; the
// email is the only record of a suggestion, nothing is persisted.
type SMTPSender struct {
	client  *gomail.Client
	account string
	logger  *zap.Logger
}

func NewSMTPSender(conf *configs.Config, logger *zap.Logger) (*SMTPSender, error) {
	client, err := gomail.NewClient(conf.SMTP.Host,
		gomail.WithPort(conf.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(conf.SMTP.User),
		gomail.WithPassword(conf.SMTP.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return nil, err
	}

	return &SMTPSender{client: client, account: conf.SMTP.User, logger: logger}, nil
}

func (s *SMTPSender) SendSuggestion(ctx context.Context, suggestion Suggestion) error {
	reference := uuid.New()

	msg := gomail.NewMsg()
	if err := msg.From(s.account); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if err := msg.To(s.account); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	msg.Subject(suggestionSubject)
	msg.SetBodyString(gomail.TypeTextPlain, suggestionBody(suggestion, reference))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.Error("error sending suggestion", zap.String("reference", reference.String()), zap.Error(err))

		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	s.logger.Info("suggestion sent", zap.String("reference", reference.String()), zap.String("cafe", suggestion.Name))

	return nil
}

func suggestionBody(suggestion Suggestion, reference uuid.UUID) string {
	return fmt.Sprintf(`A user has requested to add a new cafe:

Name: %s
Location: %s
Image URL: %s
Coffee Price: %s
Details: %s
Rating: %.1f

Reference: %s
`, suggestion.Name, suggestion.Location, suggestion.ImgURL, suggestion.CoffeePrice, suggestion.Detail, suggestion.Rating, reference)
}
