package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/creditguard/creditguard-client/models"
	"github.com/go-resty/resty/v2"
)

// StatusError is the error produced by mapHTTPError for any recognised HTTP
// failure. It unwraps to one of the package sentinels so callers can branch
// with [errors.Is], while keeping the clean server-supplied text available
// for display.
type StatusError struct {
	kind error
	msg  string
	code int
}

// NewStatusError builds a StatusError wrapping the given sentinel. Intended
// for tests and for fakes standing in for the HTTP gateway.
func NewStatusError(kind error, code int, msg string) *StatusError {
	return &StatusError{kind: kind, msg: msg, code: code}
}

func (e *StatusError) Error() string   { return fmt.Sprintf("%s: %s", e.kind.Error(), e.msg) }
func (e *StatusError) Unwrap() error   { return e.kind }
func (e *StatusError) Message() string { return e.msg }
func (e *StatusError) StatusCode() int { return e.code }

// Message returns the human-readable part of err. For errors produced by
// mapHTTPError that is the server-supplied (or fallback) text without the
// sentinel prefix; any other error yields its full Error() string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.msg
	}
	return err.Error()
}

// mapHTTPError converts a non-2xx resty response into a [*StatusError]
// wrapping one of the package sentinel errors. The server reports failures as
// a JSON object with either a "message" or an "error" field; when neither is
// present (or the body is not JSON at all) fallback is used instead.
func mapHTTPError(resp *resty.Response, fallback string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := extractErrorMessage(resp.Body(), fallback)

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusBadGateway:
		kind = ErrBadGateway
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		kind = fmt.Errorf("http %d", resp.StatusCode())
	}

	return &StatusError{kind: kind, msg: msg, code: resp.StatusCode()}
}

func extractErrorMessage(body []byte, fallback string) string {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if text := apiErr.Text(); text != "" {
			return text
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
		return trimmed
	}
	return fallback
}
