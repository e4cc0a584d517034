// Package common defines shared constants and sentinel errors used across
// the LocAgri server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Malformed request input (empty email, short password, bad path).
	ErrorInvalidArgument = errors.New("invalid argument")

	// Query validation errors (unknown table, column, relation or bad filter value).
	ErrorInvalidQuery = errors.New("invalid query")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
