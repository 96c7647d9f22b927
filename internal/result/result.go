// Package result provides a two-variant Result type for callers that prefer
// passing outcomes around as values instead of returning (value, error) pairs.
//
// A Result is always exactly one of Ok or Err. The interface has an
// unexported method, so the only way to obtain a Result is through NewOk,
// NewErr or FromPair, and neither variant has a zero state that carries both
// a value and an error. A struct embedding Ok or Err outside this package
// still satisfies the interface; Match and Unpack reject such values with a
// panic.
//
// Consume a Result with a type switch or with Match:
//
//	r := pidfile.TryAcquire(dir, "backup")
//	switch v := r.(type) {
//	case result.Ok[int, error]:
//		fmt.Println("running as", v.Value())
//	case result.Err[int, error]:
//		fmt.Println("refusing to start:", v.Reason())
//	}
package result

import "fmt"

// Result is the outcome of a fallible operation: either Ok[T, E] or Err[T, E].
type Result[T, E any] interface {
	// isResult restricts the interface to the variants in this package. It
	// mentions T and E so callers get type arguments inferred from a Result.
	isResult(T, E)
}

// Ok is the success variant.
type Ok[T, E any] struct {
	value T
}

// Err is the failure variant.
type Err[T, E any] struct {
	reason E
}

func (Ok[T, E]) isResult(T, E)  {}
func (Err[T, E]) isResult(T, E) {}

// NewOk wraps a success value.
func NewOk[T, E any](value T) Result[T, E] {
	return Ok[T, E]{value: value}
}

// NewErr wraps a failure value.
func NewErr[T, E any](reason E) Result[T, E] {
	return Err[T, E]{reason: reason}
}

// Value returns the wrapped success value.
func (o Ok[T, E]) Value() T {
	return o.value
}

// Reason returns the wrapped failure value. It is deliberately not named
// Error so that Err never satisfies the error interface by accident.
func (e Err[T, E]) Reason() E {
	return e.reason
}

// Match calls exactly one of onOk or onErr depending on the variant of r and
// returns its result.
//
// Match panics if r is nil or a type from outside this package.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	switch v := r.(type) {
	case Ok[T, E]:
		return onOk(v.value)
	case Err[T, E]:
		return onErr(v.reason)
	default:
		panic(fmt.Sprintf("result: Match called on %T, want Ok or Err", r))
	}
}

// IsOk reports whether r is the Ok variant.
func IsOk[T, E any](r Result[T, E]) bool {
	_, ok := r.(Ok[T, E])
	return ok
}

// Unpack returns the value, the failure and whether r is Ok. Exactly one of
// the first two return values is meaningful; the other is its zero value.
func Unpack[T, E any](r Result[T, E]) (T, E, bool) {
	var (
		value  T
		reason E
	)
	switch v := r.(type) {
	case Ok[T, E]:
		return v.value, reason, true
	case Err[T, E]:
		return value, v.reason, false
	default:
		panic(fmt.Sprintf("result: Unpack called on %T, want Ok or Err", r))
	}
}

// FromPair converts Go's conventional (value, error) return into a Result.
// A non-nil err always produces Err, regardless of value.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return NewErr[T](err)
	}
	return NewOk[T, error](value)
}

// ToPair is the inverse of FromPair.
func ToPair[T any](r Result[T, error]) (T, error) {
	value, err, _ := Unpack(r)
	return value, err
}
