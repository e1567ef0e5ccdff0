// Package maybe provides an optional-value container: Some carrying a
// value or Nothing. Like result.Result it is a pure value with no I/O.
package maybe

import "fmt"

// Maybe holds either a value (Some) or no value (Nothing).
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, some: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.some
}

// IsNothing reports whether no value is present.
func (m Maybe[T]) IsNothing() bool {
	return !m.some
}

// Unwrap returns the value. Unwrapping Nothing is a programmer error
// and panics.
func (m Maybe[T]) Unwrap() T {
	if !m.some {
		panic("maybe: unwrap of Nothing")
	}
	return m.value
}

// String renders Some(v) or Nothing.
func (m Maybe[T]) String() string {
	if m.some {
		return fmt.Sprintf("Some(%v)", m.value)
	}
	return "Nothing"
}

// Map applies f to the value; Nothing passes through unchanged.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.some {
		return Nothing[U]()
	}
	return Some(f(m.value))
}

// Bind chains a function returning a new Maybe, short-circuiting on Nothing.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.some {
		return Nothing[U]()
	}
	return f(m.value)
}
