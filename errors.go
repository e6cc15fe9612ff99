package inkpress

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the backend reports no post for a given id.
var ErrNotFound = errors.New("post not found")

// ErrInvalidImage is returned when an uploaded file cannot be decoded as an
// image. No partial result is produced alongside it.
var ErrInvalidImage = errors.New("invalid image")

// ErrDuplicateEmail is returned when registering an email that already has
// an account.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidLogin is returned when credentials do not match a stored account.
var ErrInvalidLogin = errors.New("invalid email or password")

// TransportError reports a failed exchange with the backend collection API:
// a network failure or an unexpected status. Local collection state is never
// touched when one is returned.
type TransportError struct {
	Op         string // "list", "get", "create", "update", "remove"
	StatusCode int    // zero when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s posts: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s posts: backend returned status %d", e.Op, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectedError reports a backend-side validation rejection of a payload,
// carrying the backend-provided message when one was present.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("post rejected by backend: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("post rejected by backend (status %d)", e.StatusCode)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRejected reports whether err is a backend rejection, returning the
// message to surface to the user.
func IsRejected(err error) (string, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Message, true
	}
	return "", false
}
