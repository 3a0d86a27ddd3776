package errs

import "errors"

// Classification sentinels. Every error a caller is expected to handle is
// created with NewKind so that errors.Is works for both the specific error
// and its kind.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("authorization error")
	ErrConflict      = errors.New("conflict")
)

var kinds = []error{ErrValidation, ErrNotFound, ErrAuthorization, ErrConflict}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func NewKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf returns the classification sentinel of err, or nil when err is
// unclassified.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindName is the wire name of the classification of err.
func KindName(err error) string {
	switch KindOf(err) {
	case ErrValidation:
		return "VALIDATION"
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrAuthorization:
		return "AUTHORIZATION"
	case ErrConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}
