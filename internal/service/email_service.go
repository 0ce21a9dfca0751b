package service

import (
	"context"
	"time"

	entity "disaster-alert/internal/domain"

	"go.uber.org/zap"
)

// Mailer is the outbound email provider.
type Mailer interface {
	Send(ctx context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error)
}

type EmailService struct {
	mailer Mailer
	logger *zap.Logger
}

// NewEmailService accepts a nil mailer; every send then fails with
// ErrProviderNotConfigured.
func NewEmailService(mailer Mailer, logger *zap.Logger) *EmailService {
	return &EmailService{mailer: mailer, logger: logger}
}

// SendAlert mails body to the recipient with the severity as the subject.
// Provider errors are returned untouched and never retried.
func (s *EmailService) SendAlert(ctx context.Context, input *entity.SendAlertInput) (entity.ProviderResponse, error) {
	if s.mailer == nil {
		return nil, ErrProviderNotConfigured
	}

	msg := &entity.AlertEmail{
		To:    input.Email,
		Title: input.Severity,
		Body:  input.Body,
		Data:  map[string]string{"name": input.Name},
	}

	start := time.Now()
	resp, err := s.mailer.Send(ctx, msg)
	if err != nil {
		s.logger.Error("alert email failed",
			zap.String("recipient", msg.To),
			zap.String("severity", msg.Title),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("alert email sent",
		zap.String("recipient", msg.To),
		zap.String("severity", msg.Title),
		zap.Duration("duration", time.Since(start)))
	return resp, nil
}
