package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianflutur/registry/internal/container"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeNotFound
	ErrCodeAlreadyRegistered
	ErrCodeCyclicDependency
	ErrCodeTypeMismatch
	ErrCodeDisposeFailed
	ErrCodeValidationFailed
	ErrCodeModuleApplyFailed
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:           "UNKNOWN",
	ErrCodeNotFound:          "NOT_FOUND",
	ErrCodeAlreadyRegistered: "ALREADY_REGISTERED",
	ErrCodeCyclicDependency:  "CYCLIC_DEPENDENCY",
	ErrCodeTypeMismatch:      "TYPE_MISMATCH",
	ErrCodeDisposeFailed:     "DISPOSE_FAILED",
	ErrCodeValidationFailed:  "VALIDATION_FAILED",
	ErrCodeModuleApplyFailed: "MODULE_APPLY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

// Sentinels for errors.Is. Any *Error with the same code matches.
var (
	ErrNotFound          = &Error{Code: ErrCodeNotFound}
	ErrAlreadyRegistered = &Error{Code: ErrCodeAlreadyRegistered}
	ErrCyclicDependency  = &Error{Code: ErrCodeCyclicDependency}
	ErrTypeMismatch      = &Error{Code: ErrCodeTypeMismatch}
	ErrDisposeFailed     = &Error{Code: ErrCodeDisposeFailed}
	ErrValidationFailed  = &Error{Code: ErrCodeValidationFailed}
)

type Error struct {
	Code    ErrorCode
	Message string
	Key     Key
	Cause   error
	Stack   []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Key != "" {
		b.WriteString(fmt.Sprintf(" key=%q:", e.Key))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithKey(key Key) *Error {
	e.Key = key
	return e
}

func (e *Error) WithStack(stack []string) *Error {
	e.Stack = stack
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errNotFound(key Key) *Error {
	return newError(
		ErrCodeNotFound,
		fmt.Sprintf("nothing registered for %s", key),
		nil,
	).WithKey(key)
}

func errAlreadyRegistered(key Key) *Error {
	return newError(
		ErrCodeAlreadyRegistered,
		fmt.Sprintf("%s is already registered and does not allow re-registration", key),
		nil,
	).WithKey(key)
}

func errCyclicDependency(chain []string) *Error {
	var key Key
	if len(chain) > 0 {
		key = Key(chain[0])
	}
	return newError(
		ErrCodeCyclicDependency,
		fmt.Sprintf("cyclic dependency detected: %s", strings.Join(chain, " -> ")),
		nil,
	).WithKey(key).WithStack(chain)
}

func errTypeMismatch(key Key, want, got string) *Error {
	return newError(
		ErrCodeTypeMismatch,
		fmt.Sprintf("instance of %s is not a %s", got, want),
		nil,
	).WithKey(key)
}

func errDisposeTypeMismatch(key Key, want, got string) *Error {
	return newError(
		ErrCodeTypeMismatch,
		fmt.Sprintf("dispose callback takes %s, registration holds %s", got, want),
		nil,
	).WithKey(key)
}

func errDisposeFailed(cause error) *Error {
	return newError(ErrCodeDisposeFailed, "dispose callbacks failed", cause)
}

func errValidationFailed(cause error) *Error {
	return newError(ErrCodeValidationFailed, "registry validation failed", cause)
}

func errUnsupportedBindOption(key Key) *Error {
	return newError(
		ErrCodeValidationFailed,
		"bindings follow the mode and disposal of their implementation; WithMode and WithOnDispose are not accepted",
		nil,
	).WithKey(key)
}

// translate maps engine errors onto *Error. Anything else, such as a
// builder's or dispose callback's own error, is returned unchanged.
func translate(err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *container.NotFoundError:
		return errNotFound(Key(e.Key))
	case *container.AlreadyRegisteredError:
		return errAlreadyRegistered(Key(e.Key))
	case *container.CycleError:
		return errCyclicDependency(e.Chain)
	default:
		return err
	}
}

// The predicates below look through the whole error chain, so a module
// failure still reports the registration error that caused it.

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

func IsCyclicDependency(err error) bool {
	return errors.Is(err, ErrCyclicDependency)
}

func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func IsDisposeFailed(err error) bool {
	return errors.Is(err, ErrDisposeFailed)
}

func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
