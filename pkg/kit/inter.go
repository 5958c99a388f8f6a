package kit

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[T any] interface {
	// CurrentValue returns the value of a finished load
	CurrentValue() (T, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	Id() uuid.UUID
}

// WithError defines an interface for states that can carry a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// CurrentError returns the error if the last load failed
	CurrentError() (AnyError, bool)
	Err() error
}

// WithInFlight extends WithError with the in-progress status
type WithInFlight[T any] interface {
	WithError[T]
	IsInFlight() bool
	PreviousValue() (T, bool)
}

var _ WithInFlight[int] = Loading[int]{}
