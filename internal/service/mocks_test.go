package service

import (
	"context"

	entity "disaster-alert/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) ListByAdmin(ctx context.Context, email string) ([]entity.Notification, error) {
	args := m.Called(ctx, email)
	list, _ := args.Get(0).([]entity.Notification)
	return list, args.Error(1)
}

func (m *mockNotificationRepo) ListByLocation(ctx context.Context, location string) ([]entity.Notification, error) {
	args := m.Called(ctx, location)
	list, _ := args.Get(0).([]entity.Notification)
	return list, args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error) {
	args := m.Called(ctx, msg)
	resp, _ := args.Get(0).(entity.ProviderResponse)
	return resp, args.Error(1)
}
