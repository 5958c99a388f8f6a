package kit

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ComparableError is an error that knows how to compare itself to another error.
// Only comparable errors can be wrapped into AnyError.
type ComparableError interface {
	error
	Equal(other error) bool
}

// LocalizedError adds a human-readable description and a hash key.
// Equal errors must return equal hash keys.
type LocalizedError interface {
	ComparableError
	Description() string
	HashKey() string
}

// AnyError wraps a ComparableError so that errors of different types
// can be stored and compared as one type.
type AnyError struct {
	wrapped ComparableError
}

func Wrap[E ComparableError](err E) AnyError {
	if IsNil(err) {
		return AnyError{}
	}
	return AnyError{wrapped: err}
}

func (e AnyError) Error() string {
	if e.wrapped == nil {
		return ""
	}
	return e.wrapped.Error()
}

func (e AnyError) Unwrap() error {
	if e.wrapped == nil {
		return nil
	}
	return e.wrapped
}

func (e AnyError) IsZero() bool {
	return e.wrapped == nil
}

// Equal holds when both wrapped errors accept each other.
func (e AnyError) Equal(other AnyError) bool {
	if e.wrapped == nil || other.wrapped == nil {
		return e.wrapped == nil && other.wrapped == nil
	}
	return e.wrapped.Equal(other.wrapped) && other.wrapped.Equal(e.wrapped)
}

type AnyLocalizedError struct {
	wrapped LocalizedError
}

func WrapLocalized[E LocalizedError](err E) AnyLocalizedError {
	if IsNil(err) {
		return AnyLocalizedError{}
	}
	return AnyLocalizedError{wrapped: err}
}

func (e AnyLocalizedError) Error() string {
	if e.wrapped == nil {
		return ""
	}
	return e.wrapped.Error()
}

func (e AnyLocalizedError) Description() string {
	if e.wrapped == nil {
		return ""
	}
	return e.wrapped.Description()
}

func (e AnyLocalizedError) Unwrap() error {
	if e.wrapped == nil {
		return nil
	}
	return e.wrapped
}

func (e AnyLocalizedError) Equal(other AnyLocalizedError) bool {
	return e.AnyError().Equal(other.AnyError())
}

// Hash is derived from the wrapped error's hash key, so equal errors hash equal.
func (e AnyLocalizedError) Hash() uint64 {
	if e.wrapped == nil {
		return 0
	}
	return xxhash.Sum64String(e.wrapped.HashKey())
}

func (e AnyLocalizedError) AnyError() AnyError {
	if e.wrapped == nil {
		return AnyError{}
	}
	return AnyError{wrapped: e.wrapped}
}

// CodedError is a LocalizedError identified by a domain and a code.
type CodedError struct {
	Domain  string
	Code    int
	Message string
}

func NewCodedError(domain string, code int, message string) CodedError {
	return CodedError{Domain: domain, Code: code, Message: message}
}

func (e CodedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s error %d", e.Domain, e.Code)
	}
	return fmt.Sprintf("%s error %d: %s", e.Domain, e.Code, e.Message)
}

func (e CodedError) Description() string {
	if e.Message == "" {
		return e.Error()
	}
	return e.Message
}

func (e CodedError) HashKey() string {
	return fmt.Sprintf("%s#%d", e.Domain, e.Code)
}

func (e CodedError) Equal(other error) bool {
	var o CodedError
	if !errors.As(other, &o) {
		return false
	}
	return e == o
}

type sentinelError struct {
	err error
}

// Sentinel makes a plain error comparable: two errors are equal when they are the
// same error or errors.Is matches in either direction. AnyError and
// AnyLocalizedError give back the error they wrap.
//
// Matching through errors.Is is not transitive, e.g. errors.Join(a, io.EOF) and
// errors.Join(b, io.EOF) both equal io.EOF but not each other, so sentinel errors
// make a poor key for deduplicating Loading values.
func Sentinel(err error) ComparableError {
	switch e := err.(type) {
	case nil:
		return nil
	case AnyError:
		return e.wrapped
	case AnyLocalizedError:
		if e.wrapped == nil {
			return nil
		}
		return e.wrapped
	case ComparableError:
		return e
	}
	return sentinelError{err: err}
}

func (e sentinelError) Error() string {
	return e.err.Error()
}

func (e sentinelError) Unwrap() error {
	return e.err
}

func (e sentinelError) Equal(other error) bool {
	var o sentinelError
	if errors.As(other, &o) {
		other = o.err
	}
	if sameError(e.err, other) {
		return true
	}
	return safeIs(other, e.err) || safeIs(e.err, other)
}

// sameError compares by == when the values allow it, by reflect.DeepEqual otherwise.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// safeIs skips errors.Is when target has a comparable type holding an
// uncomparable value, since errors.Is would panic on ==.
func safeIs(err, target error) bool {
	if target != nil {
		v := reflect.ValueOf(target)
		if v.Type().Comparable() && !v.Comparable() {
			return false
		}
	}
	return errors.Is(err, target)
}
