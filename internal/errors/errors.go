// Package errors is the error toolkit shared by the delivery and usecase
// layers: stdlib matching plus pkg/errors wrapping with stack traces.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching goes through the standard library so wrapped AppErrors still match.
func Is(err, target error) bool     { return stderrors.Is(err, target) }
func As(err error, target any) bool { return stderrors.As(err, target) }

// New records a stack trace at the call site.
func New(text string) error { return pkgerrors.New(text) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}
