package api

import "fmt"

// RequestError is the single failure kind the gateway reports: any non-2xx
// response, network-level failure or undecodable body, regardless of which
// endpoint was called. StatusCode is zero when no HTTP response was
// received. Match with errors.As.
//
// A transport-successful response whose body signals a business-level
// rejection (e.g. a failed login with HTTP 200) is NOT a RequestError;
// see LoginResult.
type RequestError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status != "":
		return fmt.Sprintf("request failed: %s", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %v", e.Err)
	default:
		return "request failed"
	}
}

func (e *RequestError) Unwrap() error { return e.Err }
