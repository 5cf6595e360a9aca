// Package options implements the generic functional option pattern shared by
// the container, blob and codec packages.
package options

// Option configures a target of type T. The target is normally a pointer to
// an unexported settings struct owned by the package exposing the option.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a plain function.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an Option. A non-nil error from fn aborts Apply.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a setter that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
