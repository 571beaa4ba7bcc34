// Package cerr declares the error kinds which may cross the use case
// boundary. Each error wraps its cause and carries the HTTP status code
// which the RESTful adapter should report for it. Errors are surfaced
// directly to the caller with no local recovery; retrying is the
// caller's decision (appropriate for Conflict, not for BadRequest or
// NotFound).
package cerr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest marks err as a business-rule violation, such as a
// rented/deleted car or an out-of-order date range.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// NotFound marks err as a missing record condition, including records
// which do not exist in the required state.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict marks err as a lost race: a conditional acquire matched
// zero rows because a concurrent operation won the same car or client.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}
