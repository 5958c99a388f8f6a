package kit

import "context"

// Handlers holds one callback per state. A nil callback yields the zero Out.
type Handlers[T comparable, Out any] struct {
	OnIdle     func(ctx context.Context) Out
	OnError    func(ctx context.Context, err AnyError) Out
	OnInFlight func(ctx context.Context, previous T, hasPrevious bool) Out
	OnLoaded   func(ctx context.Context, value T) Out
}

func Fold[T comparable, Out any](ctx context.Context, input Loading[T], handlers Handlers[T, Out]) Out {
	var out Out

	switch input.kind {
	case KindIdle:
		if handlers.OnIdle != nil {
			out = handlers.OnIdle(ctx)
		}
	case KindError:
		if handlers.OnError != nil {
			out = handlers.OnError(ctx, input.err)
		}
	case KindInFlight:
		if handlers.OnInFlight != nil {
			out = handlers.OnInFlight(ctx, input.value, input.hasPrevious)
		}
	case KindLoaded:
		if handlers.OnLoaded != nil {
			out = handlers.OnLoaded(ctx, input.value)
		}
	}

	return out
}

// Map transforms the loaded value and the previous value of an in-flight load.
// The result keeps the id and creation time of the input.
func Map[In comparable, Out comparable](ctx context.Context,
	input Loading[In],
	onValue func(ctx context.Context, v In) Out) Loading[Out] {

	out := Loading[Out]{
		id:          input.id,
		createdAt:   input.createdAt,
		kind:        input.kind,
		err:         input.err,
		hasPrevious: input.hasPrevious,
	}

	if input.kind == KindLoaded || (input.kind == KindInFlight && input.hasPrevious) {
		out.value = onValue(ctx, input.value)
	}

	return out
}

func Tee[T comparable](ctx context.Context,
	input Loading[T],
	onLoaded func(ctx context.Context, v T)) Loading[T] {

	if input.kind == KindLoaded {
		onLoaded(ctx, input.value)
	}

	return input
}

// Settle turns a (value, error) pair into Loaded or Failed.
// Errors that are not ComparableError are compared with errors.Is.
func Settle[T comparable](value T, err error) Loading[T] {
	if err != nil {
		return Failed[T](Wrap(Sentinel(err)))
	}
	return Loaded(value)
}
