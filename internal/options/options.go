// Package options implements the generic functional-option mechanism shared by
// the configurable types in this module.
package options

// Option configures a target of type T. Implementations may reject invalid
// settings by returning an error, which aborts construction of the target.
type Option[T any] interface {
	apply(T) error
}

type funcOption[T any] struct {
	fn func(T) error
}

func (o funcOption[T]) apply(target T) error {
	return o.fn(target)
}

// New wraps a fallible configuration function as an Option.
func New[T any](fn func(T) error) Option[T] {
	return funcOption[T]{fn: fn}
}

// NoError wraps an infallible configuration function as an Option. Use it for
// settings that cannot be invalid (booleans, enum selections validated later).
func NoError[T any](fn func(T)) Option[T] {
	return funcOption[T]{fn: func(target T) error {
		fn(target)
		return nil
	}}
}

// Apply runs each option against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
