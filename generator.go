package generator

// Values is an ordered sequence of values flowing into or out of a
// generator. Zero or more values may flow in either direction on each
// invocation.
type Values []any

// A Definition is supplied by the generator's author. It receives the
// instance-private yield capability and must return the body that Invoke
// will drive. This two-level shape keeps the capability private to one
// instance instead of shared process-wide.
//
// The body calls yield zero or more times; each call suspends the body,
// hands the yielded values to the Invoke caller, and returns the arguments
// of the next Invoke.
type Definition func(yield func(...any) Values) func(args ...any) Values

// State is the lifecycle state of a generator instance.
type State uint8

const (
	Ready State = iota
	Suspended
	Done
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Suspended:
		return "suspended"
	case Done:
		return "done"
	default:
		return "invalid"
	}
}

// Generator is a stateful wrapper around one body. Each Invoke runs the
// body from wherever it last stopped until it yields or returns.
//
// Instance state is mutated only by Invoke and Close on that instance; it
// is not safe to call either concurrently from multiple goroutines, callers
// needing that must serialize externally. Distinct instances are fully
// independent, including instances built from the same Definition.
type Generator struct {
	state   State
	body    func(args ...any) Values
	resume  *ResumePoint[Values, Values]
	suspend Suspend[Values, Values]
}

// New builds a generator instance from def. def is called once, with the
// instance's yield capability, to capture the body; no body code runs until
// the first Invoke.
func New(def Definition) *Generator {
	g := &Generator{}
	g.body = def(g.yield)
	return g
}

// yield is the capability handed to def. It delegates to the suspend
// capability of the scope established by the first Invoke; until then, and
// after the body finished, there is no active scope to suspend.
func (g *Generator) yield(vs ...any) Values {
	if g.suspend == nil {
		panic(ErrNoScope)
	}
	return g.suspend(Values(vs))
}

// Invoke runs the body until its next yield point, or until completion,
// and returns the yielded or returned values. The first call's args become
// the body's call arguments; each later call's args become the result of
// the yield the body is paused at. Once the instance is Done, Invoke
// reports ErrExhausted without running any body code.
//
// If the body panics, the instance becomes Done and the panic resurfaces
// here as a *PanicError.
func (g *Generator) Invoke(args ...any) (Values, error) {
	if g.state == Done {
		return nil, ErrExhausted
	}

	// A body panic resurfaces through Establish or Resume; the instance
	// cannot be re-entered after that, so it finishes before the panic
	// continues to the caller.
	defer func() {
		if v := recover(); v != nil {
			g.state = Done
			g.resume = nil
			panic(v)
		}
	}()

	var out Outcome[Values, Values]
	if g.state == Ready {
		out = Establish(func(suspend Suspend[Values, Values]) Values {
			g.suspend = suspend
			return g.body(args...)
		})
	} else {
		rp := g.resume
		g.resume = nil
		out = rp.Resume(Values(args))
	}

	if out.Suspended() {
		g.state = Suspended
		g.resume = out.Next
		return out.Values, nil
	}
	g.state = Done
	return out.Values, nil
}

// State reports the instance's lifecycle state.
func (g *Generator) State() State { return g.state }

// Close finishes the instance. A suspended body does not return from its
// yield point; its goroutine unwinds, running each defer in the inverse
// order that they were declared, and the parked goroutine is released.
// Close is idempotent and safe to call in any state.
//
// Abandoning a suspended instance without closing it leaks its parked
// goroutine until process teardown.
func (g *Generator) Close() {
	if g.state == Suspended {
		g.resume.Stop()
		g.resume = nil
	}
	g.state = Done
}
