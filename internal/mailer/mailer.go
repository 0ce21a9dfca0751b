package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	entity "disaster-alert/internal/domain"
)

const (
	ProviderCourier = "courier"
	ProviderSMTP    = "smtp"
)

// Sender delivers a single alert email and returns the provider's answer.
type Sender interface {
	Send(ctx context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error)
}

type Config struct {
	Provider       string
	CourierToken   string
	CourierBaseURL string
	Timeout        time.Duration
	SMTP           SMTPConfig
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case ProviderCourier:
		return nil
	case ProviderSMTP:
		return c.SMTP.Validate()
	default:
		return fmt.Errorf("unknown email provider %q", c.Provider)
	}
}

// New builds the configured sender. It returns a nil Sender and no error
// when the Courier credential is missing so the service can start with
// email dispatch disabled.
func New(c Config) (Sender, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if strings.ToLower(c.Provider) == ProviderSMTP {
		s, err := NewSMTP(c.SMTP)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	if c.CourierToken == "" {
		return nil, nil
	}
	courier, err := NewCourier(c.CourierBaseURL, c.CourierToken, &http.Client{Timeout: c.Timeout})
	if err != nil {
		return nil, err
	}
	return courier, nil
}

// ProviderError reports a failed delivery attempt. StatusCode is zero when
// the provider was never reached.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
