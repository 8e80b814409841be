package generator

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a panic raised inside a generator body across the
// suspension boundary to the driving side. It preserves the original panic
// value and the body goroutine's stack at the point of the panic, which
// would otherwise be lost when the panic resurfaces on the caller's stack.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the original panic value.
func (p *PanicError) Value() any { return p.value }

// Stack returns the body goroutine's stack captured when it panicked.
func (p *PanicError) Stack() []byte { return p.stack }

func (p *PanicError) Error() string {
	return fmt.Sprintf("generator: body panicked: %v", p.value)
}

// Unwrap returns the original panic value if it was an error, nil otherwise.
func (p *PanicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}
