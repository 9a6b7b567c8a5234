package model

import "errors"

var (
	// User related errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserInactive = errors.New("user account is deactivated")

	// Token related errors
	ErrTokenNotFound  = errors.New("refresh token not found")
	ErrTokenExpired   = errors.New("refresh token expired")
	ErrDuplicateToken = errors.New("refresh token already exists")

	// Credential errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
