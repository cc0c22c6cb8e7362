package services

import "errors"

// Common service errors
var (
	// ErrUnauthorized is returned when a caller fails the admin capability check
	ErrUnauthorized = errors.New("unauthorized: only admins can impersonate users")

	// ErrTokenNotConfigured is returned when the stored private integration
	// token is missing from admin settings
	ErrTokenNotConfigured = errors.New("private integration token not configured")
)
