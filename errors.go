package generator

import "errors"

var (
	// ErrExhausted is reported by Invoke on an instance that already
	// finished. It is the expected end-of-sequence signal, not a failure.
	ErrExhausted = errors.New("generator: exhausted")

	// ErrNoScope is the panic value when a yield capability is invoked with
	// no enclosing suspension scope in progress, such as a capability that
	// escaped its generator and was called after the body finished.
	ErrNoScope = errors.New("generator: yield capability used outside an active suspension scope")

	// ErrStaleResume is the panic value when a resume point is consumed a
	// second time, or after its scope finished.
	ErrStaleResume = errors.New("generator: resume point already consumed")
)
