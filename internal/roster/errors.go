package roster

import "errors"

var (
	// ErrAlreadyLoggedIn means a record with a login time already exists for
	// the same student, event and session. A completed session blocks a new
	// login for that slot just like an open one.
	ErrAlreadyLoggedIn = errors.New("student already logged in for this session")

	// ErrStudentNotFound means the login name matched no registered student.
	ErrStudentNotFound = errors.New("student not found in database")

	// ErrEventNotFound means the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrRecordNotFound means the referenced attendance record does not exist.
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrMissingFields means a required form field was empty. Reported before
	// any store round-trip is attempted.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidSession means the session slot was neither morning nor afternoon.
	ErrInvalidSession = errors.New("invalid session slot")
)
