// Package result provides a two-variant container for expected failures.
// A Result is either Ok carrying a value or Err carrying an error value.
// Results are plain values: they never log, never touch I/O.
package result

import "fmt"

// Result holds exactly one of a success value or an error value.
// The zero value is an Err carrying the zero value of E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok wraps a success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err wraps an error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. Unwrapping an Err is a programmer
// error and panics; use IsErr or Match to inspect first.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: unwrap of Err(%v)", r.err))
	}
	return r.value
}

// UnwrapErr returns the error value. Unwrapping an Ok panics.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("result: unwrap_err of Ok(%v)", r.value))
	}
	return r.err
}

// String renders Ok(v) or Err(e).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies f to the success value; an Err passes through unchanged.
// f reports its own failures by the caller switching to Bind; in Go the
// failure channel is the return value, so Map takes a total function.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// Bind chains a function returning a new Result, short-circuiting on Err.
func Bind[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// Match eliminates the result by calling exactly one of the two branches
// and returning its value. Match never panics on its own.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onError func(E) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onError(r.err)
}
