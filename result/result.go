// Package result provides a two-variant Result type for operations that
// either succeed with a value of type S or fail with a failure value of type
// F. A Result is always exactly one of the two variants. The variant is
// recorded by an explicit tag set at construction, so a success carrying a
// nil payload is still a success and a failure carrying a nil payload is
// still a failure.
//
// The failure type F is an ordinary type parameter and does not have to be a
// Go error. A failure can carry a string, a slice of validation messages, a
// domain struct, or anything else the caller wants to branch on.
//
// Payloads are read through Match, When, or the comma-ok accessors Value and
// Failure. There is no accessor that returns the success payload of a
// failure or the failure payload of a success.
package result

// Result is the outcome of an operation: either a success carrying a value
// of type S, or a failure carrying a value of type F. Which variant a Result
// holds is fixed when it is constructed by Success or Failure and never
// changes afterwards.
//
// A Result is an immutable value. Sharing one between any number of
// goroutines requires no synchronization.
//
// The zero value of Result is a failure carrying the zero value of F.
type Result[S any, F any] struct {
	ok      bool
	value   S
	failure F
}

// Success builds the success variant carrying the provided value.
// The value is not inspected; a nil value is carried like any other.
func Success[S any, F any](value S) Result[S, F] {
	return Result[S, F]{ok: true, value: value}
}

// Failure builds the failure variant carrying the provided failure value.
// The failure value is not inspected; a nil failure is carried like any other.
func Failure[S any, F any](failure F) Result[S, F] {
	return Result[S, F]{failure: failure}
}

// IsSuccess reports whether this Result holds the success variant. It reads
// the variant tag only and never inspects a payload, so a success carrying a
// nil value still reports true.
func (r Result[S, F]) IsSuccess() bool {
	return r.ok
}

// Value returns the success payload and true if this Result is a success.
// Otherwise it returns the zero value of S and false.
func (r Result[S, F]) Value() (S, bool) {
	if !r.ok {
		var zero S
		return zero, false
	}
	return r.value, true
}

// Failure returns the failure payload and true if this Result is a failure.
// Otherwise it returns the zero value of F and false.
func (r Result[S, F]) Failure() (F, bool) {
	if r.ok {
		var zero F
		return zero, false
	}
	return r.failure, true
}

// When invokes onSuccess with the success payload if this Result is a
// success, or onFailure with the failure payload if it is a failure. Either
// handler may be nil, in which case it is skipped. The handler for the
// inactive variant is never invoked. Calling When with two nil handlers
// does nothing.
func (r Result[S, F]) When(onSuccess func(S), onFailure func(F)) {
	if r.ok {
		if onSuccess != nil {
			onSuccess(r.value)
		}
		return
	}

	if onFailure != nil {
		onFailure(r.failure)
	}
}

// Match invokes exactly one of the two handlers with the active variant's
// payload and returns that handler's return value. Both handlers are
// required and must be non-nil. Match is a function rather than a method
// because a method cannot introduce the return type parameter R.
func Match[S any, F any, R any](r Result[S, F], onSuccess func(S) R, onFailure func(F) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}
