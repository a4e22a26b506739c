package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnavailable matches failures where no response was received
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrRequestFailed matches non-2xx responses
	ErrRequestFailed = errors.New("request failed")
	// ErrInvalidResponse matches 2xx responses whose body could not be decoded
	ErrInvalidResponse = errors.New("invalid response body")
)

// NetworkError is a transport-level failure
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, ErrNetworkUnavailable, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetworkUnavailable }

// RequestError is a response outside [200,299]
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%v: %d: %s", ErrRequestFailed, e.Status, e.Message)
}

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// UserMessage returns the message suitable for showing to a user
func UserMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	if errors.Is(err, ErrNetworkUnavailable) {
		return "The service is unreachable. Check your connection and try again."
	}
	return "Something went wrong. Please try again."
}
