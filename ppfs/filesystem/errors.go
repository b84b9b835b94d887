package filesystem

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/ZanzyTHEbar/portable-pathfs/ppfs/fspath"
)

// Sentinel error kinds surfaced by filesystem operations. Use errors.Is to
// test the kind of a returned *Error regardless of the platform error inside.
var (
	ErrNotFound        = errors.New("not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotSupported    = errors.New("not supported")
)

// Error is the structured failure returned by every fallible operation. It
// carries the operation name, the involved path(s), the classified kind and
// the underlying platform error.
type Error struct {
	Op    string
	Path  fspath.Path
	Path2 fspath.Path
	Kind  error
	Err   error
}

func (e *Error) Error() string {
	msg := e.Op + " " + e.Path.String()
	if !e.Path2.Empty() {
		msg += " -> " + e.Path2.String()
	}
	switch {
	case e.Err != nil:
		return msg + ": " + e.Err.Error()
	case e.Kind != nil:
		return msg + ": " + e.Kind.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func opError(op string, p fspath.Path, err error) error {
	return &Error{Op: op, Path: p, Kind: kindOf(err), Err: err}
}

func opError2(op string, p1, p2 fspath.Path, err error) error {
	return &Error{Op: op, Path: p1, Path2: p2, Kind: kindOf(err), Err: err}
}

func invalidArgument(op string, p fspath.Path, err error) error {
	return &Error{Op: op, Path: p, Kind: ErrInvalidArgument, Err: err}
}

// kindOf classifies a platform error into one of the sentinel kinds, or nil
// when the error is a generic I/O failure.
func kindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case platformUnsupported(err):
		return ErrNotSupported
	case errors.Is(err, fs.ErrPermission):
		return ErrAccessDenied
	case errors.Is(err, syscall.EINVAL):
		return ErrInvalidArgument
	}
	return nil
}
