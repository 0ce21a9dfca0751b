package service

import "errors"

var (
	ErrUserExists            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrProviderNotConfigured = errors.New("email provider is not configured")
)
