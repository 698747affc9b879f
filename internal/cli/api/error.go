package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a server-rejected request: any non-2xx status. Message carries
// the server-supplied message when the body had one, otherwise "". Callers
// match on this closed type instead of probing response shapes.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// NotFound reports whether the server answered 404.
func (e *Error) NotFound() bool { return e.Status == 404 }

func newError(status int, body []byte) *Error {
	e := &Error{Status: status}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		e.Message = payload.Message
	} else if s := strings.TrimSpace(string(body)); s != "" && !strings.HasPrefix(s, "{") {
		e.Message = s
	}
	return e
}

// ErrorMessage reduces any facade error to a user-facing string: the
// server-supplied message when there is one, else the given fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
