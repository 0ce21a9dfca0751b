package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	entity "disaster-alert/internal/domain"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return errors.New("smtp host cannot be empty")
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid smtp port %d", c.Port)
	}
	if !strings.ContainsRune(c.From, '@') {
		return fmt.Errorf("invalid from email address: %q", c.From)
	}
	return nil
}

// SMTP relays alerts through a plain SMTP server. One connection is dialed
// per message.
type SMTP struct {
	from string
	send func(m ...*gomail.Message) error
}

func NewSMTP(c SMTPConfig) (*SMTP, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d := gomail.NewDialer(c.Host, c.Port, c.Username, c.Password)
	return &SMTP{from: c.From, send: d.DialAndSend}, nil
}

func (s *SMTP) Send(ctx context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	if err := s.send(s.prepareMessage(requestID, msg)); err != nil {
		return nil, &ProviderError{Provider: ProviderSMTP, Err: err}
	}
	return entity.ProviderResponse{"requestId": requestID}, nil
}

func (s *SMTP) prepareMessage(requestID string, msg *entity.AlertEmail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	if name := msg.Data["name"]; name != "" {
		m.SetAddressHeader("To", msg.To, name)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Title)
	m.SetHeader("X-Request-ID", requestID)
	m.SetBody("text/plain", msg.Body)
	return m
}
