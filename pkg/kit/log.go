package kit

import (
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

func (l Loading[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("state", l.kind.String())
	if l.id != uuid.Nil {
		enc.AddString("id", l.id.String())
	}

	switch l.kind {
	case KindError:
		return enc.AddObject("error", l.err)
	case KindInFlight:
		if l.hasPrevious {
			return enc.AddReflected("previous", l.value)
		}
	case KindLoaded:
		return enc.AddReflected("value", l.value)
	}

	return nil
}

func (e AnyError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.Error())
	if l, ok := e.wrapped.(LocalizedError); ok {
		enc.AddString("description", l.Description())
		enc.AddString("key", l.HashKey())
	}
	return nil
}

func (e AnyLocalizedError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return e.AnyError().MarshalLogObject(enc)
}
