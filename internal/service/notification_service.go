package service

import (
	"context"
	"time"

	entity "disaster-alert/internal/domain"
	mongorepo "disaster-alert/internal/repository/mongodb"

	"go.uber.org/zap"
)

type NotificationService struct {
	notificationRepo mongorepo.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo mongorepo.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Add stores the notification as submitted. Date and time are free-form.
func (s *NotificationService) Add(ctx context.Context, input *entity.AddNotificationInput) (*entity.Notification, error) {
	now := time.Now().UTC()
	n := &entity.Notification{
		Email:     input.Email,
		Location:  input.Location,
		Severity:  input.Severity,
		Date:      input.Date,
		Time:      input.Time,
		Text:      input.Text,
		CreatedAt: &now,
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.logger.Info("notification added",
		zap.String("id", n.ID.Hex()),
		zap.String("admin", n.Email),
		zap.String("location", n.Location),
		zap.String("severity", n.Severity))
	return n, nil
}

func (s *NotificationService) ListByAdmin(ctx context.Context, email string) ([]entity.Notification, error) {
	return s.notificationRepo.ListByAdmin(ctx, email)
}

func (s *NotificationService) ListByLocation(ctx context.Context, location string) ([]entity.Notification, error) {
	return s.notificationRepo.ListByLocation(ctx, location)
}
