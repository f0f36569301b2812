// Package common defines shared constants and sentinel errors used across
// the session and gateway layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (

	// session-specific errors
	ErrNoSession = errors.New("no active session")

	// generic flow control
	ErrorInternal = errors.New("internal error")

	// validation errors
	ErrorInvalidPhoneFormat = errors.New("invalid phone number format")
	ErrorInvalidDateFormat  = errors.New("invalid date format")
)
