package kit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind uint8

const (
	KindIdle Kind = iota
	KindError
	KindInFlight
	KindLoaded
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindError:
		return "error"
	case KindInFlight:
		return "in_flight"
	case KindLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Loading is the status of an asynchronously loaded value. The zero value is Idle.
// Values are immutable: a transition is a new Loading built by the caller.
type Loading[T comparable] struct {
	id          uuid.UUID
	createdAt   time.Time
	kind        Kind
	value       T
	err         AnyError
	hasPrevious bool
}

func Idle[T comparable]() Loading[T] {
	return Loading[T]{
		kind:      KindIdle,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed expects a non-zero err. With a zero AnyError the state is still an error:
// CurrentError reports (zero, true) while Err returns nil.
func Failed[T comparable](err AnyError) Loading[T] {
	return Loading[T]{
		kind:      KindError,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// InFlight starts a load without a previous value.
func InFlight[T comparable]() Loading[T] {
	return Loading[T]{
		kind:      KindInFlight,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// InFlightWith starts a load keeping the last loaded value around,
// e.g. for showing stale data under a loading overlay.
func InFlightWith[T comparable](previous T) Loading[T] {
	return Loading[T]{
		kind:        KindInFlight,
		value:       previous,
		hasPrevious: true,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

func Loaded[T comparable](value T) Loading[T] {
	return Loading[T]{
		kind:      KindLoaded,
		value:     value,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (l Loading[T]) Kind() Kind {
	return l.kind
}

// CurrentError returns the wrapped error only for the error state.
func (l Loading[T]) CurrentError() (AnyError, bool) {
	if l.kind != KindError {
		return AnyError{}, false
	}
	return l.err, true
}

func (l Loading[T]) Err() error {
	if l.kind != KindError || l.err.IsZero() {
		return nil
	}
	return l.err
}

// CurrentValue returns the value only for the loaded state. The previous value
// of an in-flight load is not a current value, see PreviousValue.
func (l Loading[T]) CurrentValue() (T, bool) {
	if l.kind != KindLoaded {
		var zero T
		return zero, false
	}
	return l.value, true
}

// PreviousValue returns the value kept by InFlightWith.
func (l Loading[T]) PreviousValue() (T, bool) {
	if l.kind != KindInFlight || !l.hasPrevious {
		var zero T
		return zero, false
	}
	return l.value, true
}

func (l Loading[T]) IsIdle() bool {
	return l.kind == KindIdle
}

func (l Loading[T]) IsError() bool {
	return l.kind == KindError
}

func (l Loading[T]) IsInFlight() bool {
	return l.kind == KindInFlight
}

func (l Loading[T]) IsLoaded() bool {
	return l.kind == KindLoaded
}

// Id is assigned at construction and does not take part in Equal.
func (l Loading[T]) Id() uuid.UUID {
	return l.id
}

// CreatedAt time creation (UTC)
func (l Loading[T]) CreatedAt() time.Time {
	return l.createdAt
}

// Equal reports whether both values are in the same state with equal payloads.
func (l Loading[T]) Equal(other Loading[T]) bool {
	if l.kind != other.kind {
		return false
	}

	switch l.kind {
	case KindIdle:
		return true
	case KindError:
		return l.err.Equal(other.err)
	case KindInFlight:
		if l.hasPrevious != other.hasPrevious {
			return false
		}
		return !l.hasPrevious || l.value == other.value
	case KindLoaded:
		return l.value == other.value
	default:
		return false
	}
}

func (l Loading[T]) String() string {
	switch l.kind {
	case KindError:
		return fmt.Sprintf("%s(%s)", l.kind, l.err.Error())
	case KindInFlight:
		if !l.hasPrevious {
			return fmt.Sprintf("%s(<none>)", l.kind)
		}
		return fmt.Sprintf("%s(%v)", l.kind, l.value)
	case KindLoaded:
		return fmt.Sprintf("%s(%v)", l.kind, l.value)
	default:
		return l.kind.String()
	}
}
