// Package ai holds what the collaborator clients share: typed failure
// classification for the hosted speech, script, and sound services.
//
// Every client maps transport and HTTP-level failures onto the sentinel
// errors below so callers can switch on errors.Is without knowing which
// service misbehaved. Collaborator failures never touch recorder state;
// they surface as messages at the command layer.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrUnauthorized indicates a missing or rejected credential.
	ErrUnauthorized = errors.New("credential rejected")
	// ErrTimeout indicates the service did not respond in time.
	ErrTimeout = errors.New("request timed out")
	// ErrServer indicates a 5xx or otherwise failed response.
	ErrServer = errors.New("service failure")
	// ErrBadPayload indicates a response that could not be decoded.
	ErrBadPayload = errors.New("malformed response payload")
)

// Error is a classified collaborator failure.
type Error struct {
	Service string
	Status  int
	kind    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %v (HTTP %d)", e.Service, e.kind, e.Status)
	}

	return fmt.Sprintf("%s: %v", e.Service, e.kind)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// ClassifyStatus converts a non-2xx HTTP status into a typed failure.
func ClassifyStatus(service string, status int) error {
	kind := ErrServer

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = ErrUnauthorized
	}

	if status == http.StatusRequestTimeout ||
		status == http.StatusGatewayTimeout {
		kind = ErrTimeout
	}

	return &Error{Service: service, Status: status, kind: kind}
}

// ClassifyTransport converts a transport-level error into a typed failure.
func ClassifyTransport(service string, err error) error {
	kind := ErrServer

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = ErrTimeout
	}

	if errors.Is(err, context.DeadlineExceeded) {
		kind = ErrTimeout
	}

	return &Error{Service: service, kind: kind}
}

// BadPayload reports a response body that could not be decoded.
func BadPayload(service string) error {
	return &Error{Service: service, kind: ErrBadPayload}
}
