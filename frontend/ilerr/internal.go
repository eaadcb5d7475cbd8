package ilerr

import (
	"fmt"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/pkg/errors"
)

// Internal reports a broken invariant of the compiler itself, such as an
// unknown node kind or an or-pattern that survived expansion.
// It is not a diagnostic for the user's program
type Internal struct {
	ast.Location
	err error
}

func NewInternal(at ast.Location, format string, args ...any) *Internal {
	return &Internal{Location: at, err: errors.Errorf(format, args...)}
}

func (e *Internal) Error() string {
	if e.Location.IsZero() {
		return "internal error: " + e.err.Error()
	}
	return fmt.Sprintf("internal error at %v: %v", e.Location, e.err)
}

func (e *Internal) Unwrap() error { return e.err }

// Format prints the stack of the error with %+v
func (e *Internal) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s\n%+v", e.Error(), e.err)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// IsInternal reports whether err is, or wraps, an *Internal
func IsInternal(err error) bool {
	var internal *Internal
	return errors.As(err, &internal)
}
