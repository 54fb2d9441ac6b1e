package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for a known email with a
	// password that does not match the stored one.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned when an operation requiring a
	// current user runs without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrConfigurationMissing is returned when an admin-configured API key
	// or prompt required for an AI flow is absent.
	ErrConfigurationMissing = errors.New("required configuration is missing")

	// ErrRemoteCallFailed covers AI calls that fail, time out or return an
	// empty result. No distinction is made between transient and
	// permanent causes and nothing is retried.
	ErrRemoteCallFailed = errors.New("remote call failed")

	// ErrSchemaMismatch is returned when an AI response parses as JSON but
	// violates the expected result shape.
	ErrSchemaMismatch = errors.New("response does not match expected schema")
)
