package gateway

import "fmt"

// ErrorKind classifies gateway failures.
type ErrorKind string

const (
	// KindTransport covers network and connection failures.
	KindTransport ErrorKind = "transport"
	// KindHTTP covers non-2xx responses carrying a server message.
	KindHTTP ErrorKind = "http"
	// KindMalformed covers unparseable response bodies.
	KindMalformed ErrorKind = "malformed"
)

const genericMessage = "Something went wrong. Please try again."

// GatewayError is the single error type returned by the HTTP gateway.
type GatewayError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	err        error
}

func (e *GatewayError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("gateway %s error: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("gateway %s error: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.err
}

// UserMessage is the short text surfaced to the user. Server-provided
// messages pass through verbatim; transport and malformed-body failures
// fall back to a generic message.
func (e *GatewayError) UserMessage() string {
	if e.Kind == KindHTTP && e.Message != "" {
		return e.Message
	}
	return genericMessage
}

func transportError(err error) *GatewayError {
	return &GatewayError{Kind: KindTransport, Message: "request failed", err: err}
}

func malformedError(err error) *GatewayError {
	return &GatewayError{Kind: KindMalformed, Message: "unreadable response", err: err}
}

func httpError(status int, message string) *GatewayError {
	if message == "" {
		message = genericMessage
	}
	return &GatewayError{Kind: KindHTTP, StatusCode: status, Message: message}
}
