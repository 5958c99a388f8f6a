package with

// Cloner returns an independent copy of the receiver.
type Cloner[T any] interface {
	Clone() T
}

func With[T any](v T, mutate func(*T)) T {
	c := v
	mutate(&c)
	return c
}

// WithErr returns the error of mutate unchanged, together with the zero T.
func WithErr[T any](v T, mutate func(*T) error) (T, error) {
	c := v
	if err := mutate(&c); err != nil {
		var zero T
		return zero, err
	}
	return c, nil
}

func WithClone[T Cloner[T]](v T, mutate func(*T)) T {
	c := v.Clone()
	mutate(&c)
	return c
}
