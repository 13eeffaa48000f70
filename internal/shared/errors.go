package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrUnauthorized     = fmt.Errorf("unauthorized")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("token expired")
	ErrWrongPassword    = fmt.Errorf("wrong password")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrUserExists       = fmt.Errorf("user already exists")

	// API and transport errors
	ErrRequestFailed      = fmt.Errorf("request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrNotFound           = fmt.Errorf("not found")
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrVideoNotFound      = fmt.Errorf("video not found")

	// Input validation errors
	ErrValidation      = fmt.Errorf("invalid input")
	ErrInvalidURL      = fmt.Errorf("invalid video url")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// Local persistence errors
	ErrStorage = fmt.Errorf("storage failure")
)
