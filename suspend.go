package generator

import (
	"runtime"
	"sync/atomic"
)

// Suspend is the capability handed to a driver running under Establish.
// Calling it pauses the body at that exact point, transfers v to whoever is
// waiting on the Establish call (or on the most recent resumption), and does
// not return until a Resume supplies the values that become its result.
//
// The capability is private to one suspension scope. Calling it once the
// scope has finished panics with ErrNoScope.
type Suspend[Out, In any] func(v Out) In

// Outcome is the tagged result of establishing or resuming a suspension
// scope. When the body suspended, Values holds the suspended values and Next
// is the capability to continue it; when the body returned, Values holds its
// return values and Next is nil.
type Outcome[Out, In any] struct {
	Values Out
	Next   *ResumePoint[Out, In]
}

// Suspended reports whether the body is paused at a suspend point.
func (o Outcome[Out, In]) Suspended() bool { return o.Next != nil }

// ResumePoint re-enters a body paused at a suspend point. It is single-use:
// consuming it a second time, or after its scope finished, panics with
// ErrStaleResume.
type ResumePoint[Out, In any] struct {
	scope *scope[Out, In]
	used  atomic.Bool
}

// scope carries the state shared between the driving side and the body
// goroutine. The next channel enforces strict alternation: exactly one side
// runs at a time, and the out/in/ret fields are only touched around a
// handoff on next, which orders the accesses.
type scope[Out, In any] struct {
	next chan struct{}
	out  Out
	in   In
	ret  Out
	stop bool
	done atomic.Bool
	fail *PanicError
}

// Establish starts a new goroutine running driver under a fresh, private
// suspension scope, passing it the scope's suspend capability. It blocks
// until driver either suspends or returns, and reports which as a tagged
// Outcome.
//
// If driver panics, Establish (or the Resume that was in progress) panics
// with a *PanicError wrapping the original value.
func Establish[Out, In any](driver func(Suspend[Out, In]) Out) Outcome[Out, In] {
	s := &scope[Out, In]{next: make(chan struct{})}

	go func() {
		defer func() {
			s.done.Store(true)
			if v := recover(); v != nil {
				if pe, ok := v.(*PanicError); ok {
					s.fail = pe
				} else {
					s.fail = newPanicError(v)
				}
			}
			close(s.next)
		}()
		s.ret = driver(s.suspend)
	}()

	return s.wait()
}

func (s *scope[Out, In]) suspend(v Out) In {
	if s.stop {
		// The scope is unwinding; a defer in the body tried to suspend.
		panic(ErrNoScope)
	}
	if s.done.Load() {
		panic(ErrNoScope)
	}
	s.out = v
	s.next <- struct{}{}
	<-s.next
	if s.stop {
		runtime.Goexit()
	}
	return s.in
}

// wait parks the driving side until the body suspends or finishes.
func (s *scope[Out, In]) wait() Outcome[Out, In] {
	if _, ok := <-s.next; ok {
		return Outcome[Out, In]{Values: s.out, Next: &ResumePoint[Out, In]{scope: s}}
	}
	if s.fail != nil {
		panic(s.fail)
	}
	return Outcome[Out, In]{Values: s.ret}
}

// Resume consumes the resume point, re-entering the body with v as the
// result of the suspend call it is paused at. Like Establish, it blocks
// until the next suspend or the body's return.
func (rp *ResumePoint[Out, In]) Resume(v In) Outcome[Out, In] {
	if !rp.used.CompareAndSwap(false, true) || rp.scope.done.Load() {
		panic(ErrStaleResume)
	}
	rp.scope.in = v
	rp.scope.next <- struct{}{}
	return rp.scope.wait()
}

// Stop interrupts the body parked at this resume point. The body does not
// return from its suspend point; its goroutine unwinds its call stack,
// running each defer in the inverse order that they were declared, and
// Stop returns once the unwinding finished. Stop consumes the resume point;
// calling it on one already consumed has no effect.
func (rp *ResumePoint[Out, In]) Stop() {
	if !rp.used.CompareAndSwap(false, true) || rp.scope.done.Load() {
		return
	}
	rp.scope.stop = true
	rp.scope.next <- struct{}{}
	<-rp.scope.next
}
