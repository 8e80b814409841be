package generator

import "iter"

// Run drives g to completion, calling f for each set of values that the
// body yields, and sending back each set that f returns. It returns the
// body's final return values.
func Run(g *Generator, f func(Values) Values) (Values, error) {
	// The generator is run to completion, but f might panic in which case
	// we don't want to leave it suspended and close it instead.
	defer func() {
		if g.State() != Done {
			g.Close()
		}
	}()

	vs, err := g.Invoke()
	for err == nil && g.State() == Suspended {
		vs, err = g.Invoke(f(vs)...)
	}
	return vs, err
}

// Seq adapts g to a range-over-func iterator over its yielded values,
// resuming the body with no arguments on each step. Breaking out of the
// range closes the instance. The body's final return values are not part
// of the sequence.
func (g *Generator) Seq() iter.Seq[Values] {
	return func(yield func(Values) bool) {
		for {
			vs, err := g.Invoke()
			if err != nil || g.state == Done {
				return
			}
			if !yield(vs) {
				g.Close()
				return
			}
		}
	}
}
