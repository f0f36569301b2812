// Package common contains shared constants and sentinel errors used across
// Porter Owner client components.
package common

// AuthHeaderName is the HTTP header used to carry the session credential on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the credential in the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every outbound request so a call can be matched
// between client logs and backend logs.
const RequestIDHeaderName = "X-Request-Id"
