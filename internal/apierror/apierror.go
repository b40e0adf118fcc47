// Package apierror provides the handled-error type and response envelopes for
// the API. All client-facing errors go through this package so that responses
// stay uniform and internal details (stack traces, DB errors) never leak.
package apierror

import "net/http"

// Handled is a domain error carrying the HTTP status it should be reported
// with. Services return Handled errors; the handler layer translates them
// into the JSON envelope. Anything that is not a Handled error becomes a
// generic 500.
type Handled struct {
	Status  int
	Message string
}

func (e *Handled) Error() string { return e.Message }

// New builds a handled error with an explicit status code.
func New(status int, msg string) *Handled {
	return &Handled{Status: status, Message: msg}
}

// NotFound marks an unresolved entity (id or name).
func NotFound(msg string) *Handled { return New(http.StatusNotFound, msg) }

// Conflict marks a uniqueness violation ("already exists").
func Conflict(msg string) *Handled { return New(http.StatusBadRequest, msg) }

// Unauthorized marks a missing or invalid session.
func Unauthorized(msg string) *Handled { return New(http.StatusUnauthorized, msg) }

// Obscured deliberately reports a privileged-record protection failure as a
// generic server error so that the admin account's existence is not revealed.
func Obscured() *Handled { return New(http.StatusInternalServerError, "Internal server error") }

// Envelope is the canonical JSON error body: {success:false, message}.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Body builds the error envelope for a message.
func Body(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}
