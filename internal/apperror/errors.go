// Package apperror defines the failures the API reports to clients and the
// single policy that turns any error into an HTTP status and message.
package apperror

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// SQLSTATE raised by postgres when a row references a missing parent.
const foreignKeyViolation = "23503"

// Client-facing messages produced by the classifier itself.
const (
	MsgPathNotFound    = "path not found"
	MsgIDDoesNotExist  = "this ID does not exist"
	MsgSomethingWrong  = "something went wrong"
	MsgInternal        = "internal server error"
	MsgTooManyRequests = "too many requests"
)

// Error is a failure that already knows how it should be reported.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// BadRequest builds a 400 failure.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// NotFound builds a 404 failure.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// Classify maps err onto a status code and message. known is false for
// failures nothing recognised; those still get a 404 but must be logged by
// the caller since their detail is never sent to clients.
func Classify(err error) (status int, msg string, known bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Msg, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return http.StatusNotFound, MsgIDDoesNotExist, true
	}

	// Unrecognised failures are reported as 404 rather than 500; clients
	// already depend on this.
	return http.StatusNotFound, MsgSomethingWrong, false
}
