package commands

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

const (
	// ImageStillInUse tells us that the engine refused to remove an image
	// because something still depends on it. When this surfaces mid-batch the
	// ordering guarantee has been broken (most likely a stale snapshot), so
	// the batch must stop rather than continue silently
	ImageStillInUse = iota
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// IsImageNotFound reports whether the engine told us the image is already
// gone. That is expected mid-batch: removing a child can remove its parent as
// a side effect, and the snapshot may have gone stale
func IsImageNotFound(err error) bool {
	return cerrdefs.IsNotFound(err)
}

// IsImageInUse reports whether the engine refused a removal because the image
// still has dependents
func IsImageInUse(err error) bool {
	return cerrdefs.IsConflict(err)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    int
	frame   xerrors.Frame
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%d %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// NewComplexError returns an error carrying the given code
func NewComplexError(code int, message string) ComplexError {
	return ComplexError{
		Message: message,
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// HasErrorCode is a function
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}
