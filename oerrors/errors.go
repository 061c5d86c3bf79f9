// Package oerrors defines the tagged error kinds shared across the
// Originals Protocol core. Every mutating operation in the originals,
// witness and layer-adapter packages fails fast with one of these kinds so
// that callers can distinguish data-integrity failures from transient
// ones.
package oerrors

import "fmt"

// Kind identifies the class of failure. Kinds are closed: callers should
// switch on them rather than pattern-match error strings.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindChain       Kind = "chain"
	KindProof       Kind = "proof"
	KindDeactivated Kind = "deactivated"
	KindLayer       Kind = "layer"
	KindExternal    Kind = "external"
	KindEncoding    Kind = "encoding"
)

// Error is the tagged error type returned by mutating core operations.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, oerrors.KindChain) style matching is not
// supported directly (Kind is not an error); use errors.As and inspect Kind.

func newf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func NewValidationError(format string, args ...any) *Error {
	return newf(KindValidation, nil, format, args...)
}

func NewChainError(format string, args ...any) *Error {
	return newf(KindChain, nil, format, args...)
}

func NewProofError(format string, args ...any) *Error {
	return newf(KindProof, nil, format, args...)
}

func NewDeactivatedError(format string, args ...any) *Error {
	return newf(KindDeactivated, nil, format, args...)
}

func NewLayerError(format string, args ...any) *Error {
	return newf(KindLayer, nil, format, args...)
}

func NewExternalError(err error, format string, args ...any) *Error {
	return newf(KindExternal, err, format, args...)
}

func NewEncodingError(err error, format string, args ...any) *Error {
	return newf(KindEncoding, err, format, args...)
}

// Is reports whether err is an *Error of the given kind. It lets callers
// write `if oerrors.Is(err, oerrors.KindLayer) { ... }` without importing
// the standard errors package directly.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
