package domain

import "fmt"

// ClientError marks a failure caused by bad caller input. The HTTP layer
// maps these to 4xx responses with the message passed through verbatim;
// every other error becomes a generic 5xx.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string { return e.Message }

// NewClientError builds a ClientError with a formatted message.
func NewClientError(format string, args ...any) *ClientError {
	return &ClientError{Message: fmt.Sprintf(format, args...)}
}
