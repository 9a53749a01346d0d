package scalar

import "fmt"

// DomainError reports an elementary operation applied outside its
// mathematical domain (division by zero, log of a non-positive number,
// and so on). The evaluation that hit it fails atomically; the engine
// never coerces a domain failure to NaN or Inf.
type DomainError struct {
	Op       Op        // Operation that failed
	Operands []float64 // Operand values at the point of failure
	Reason   string    // Human-readable cause
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (operands %v)", e.Op, e.Reason, e.Operands)
}

func domainErr(op Op, reason string, operands ...float64) error {
	return &DomainError{Op: op, Operands: operands, Reason: reason}
}

// failure wraps an error raised inside an expression evaluation. Builder
// methods cannot return errors without making expressions unwritable, so
// rule failures panic with a failure and the evaluator entry points
// translate them back into ordinary errors via Capture. Panics of any
// other type pass through untouched.
type failure struct{ err error }

// Raise aborts the current evaluation with err. It must only be called
// under an evaluator that defers Capture.
func Raise(err error) {
	panic(failure{err})
}

// Capture recovers a Raise-initiated panic into *errp. Use as
//
//	defer scalar.Capture(&err)
//
// at every evaluator entry point.
func Capture(errp *error) {
	switch r := recover().(type) {
	case nil:
	case failure:
		*errp = r.err
	default:
		panic(r)
	}
}
