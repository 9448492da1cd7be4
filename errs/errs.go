// Package errs defines the error kinds the services surface. Handlers map
// each kind to an HTTP status; services never return raw gorm or bcrypt
// errors across the boundary.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a sentinel identifying a class of failure. Wrap one with E and
// test with errors.Is.
type Kind struct{ name string }

func (k *Kind) Error() string { return k.name }

var (
	ErrValidation     = &Kind{"validation"}
	ErrNotFound       = &Kind{"not_found"}
	ErrConflict       = &Kind{"conflict"}
	ErrAuthentication = &Kind{"authentication"}
	ErrAuthorization  = &Kind{"authorization"}
)

type kindError struct {
	kind *Kind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// E builds an error of the given kind with a caller-facing message.
func E(kind *Kind, format string, args ...any) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the stable kind name for err, or "internal" when err does
// not carry one.
func KindOf(err error) string {
	for _, k := range []*Kind{ErrValidation, ErrNotFound, ErrConflict, ErrAuthentication, ErrAuthorization} {
		if errors.Is(err, k) {
			return k.name
		}
	}
	return "internal"
}
