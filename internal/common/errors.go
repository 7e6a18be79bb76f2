// Package common defines shared sentinel errors and byte helpers used across
// the password store packages. Callers should use errors.Is to match the
// error values.
package common

import "errors"

var (
	// Session errors.
	ErrorLocked        = errors.New("store is locked")
	ErrorWrongPassword = errors.New("wrong master password")

	// Store lifecycle errors.
	ErrorNotInitialized     = errors.New("store is not initialized")
	ErrorAlreadyInitialized = errors.New("store is already initialized")

	// Configuration errors.
	ErrorUnknownStore = errors.New("unknown store kind")
)
