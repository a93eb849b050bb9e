// Package common defines shared sentinel errors used across StreamHub
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Authorization errors.
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Account validation errors.
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrWeakPassword     = errors.New("password too short")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Generic validation (empty title, missing media reference, ...).
	ErrValidation = errors.New("validation error")

	// Session errors (invalid or malformed snapshot token).
	ErrInvalidSession = errors.New("invalid session")
)
