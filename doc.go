// Package generator turns an ordinary, sequential body of logic into a
// resumable computation. A generator is invoked repeatedly; each invocation
// runs the body from wherever it last stopped until the body either yields
// values or returns, at which point control is handed back to the caller.
// The next invocation re-enters the body at exactly the point it left off,
// with the new invocation's arguments becoming the result of the pending
// yield call.
//
// The package has two layers. Establish, Suspend and ResumePoint form the
// low-level suspension primitive: pause a computation, transfer values out,
// and later feed values back in through a one-shot resume capability. The
// primitive is implemented with a goroutine parked on an unbuffered
// channel; the driving side and the body never run simultaneously, control
// alternates strictly between them. Generator is the stateful wrapper built
// on top of it, exposing the construct/invoke contract and managing the
// ready/suspended/done state machine per instance.
package generator
