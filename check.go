package smallbitset

import "fmt"

// PreconditionError is the panic value raised when a caller violates a
// precondition: a bit index outside [0, N), a source integer wider than N
// bits, or a layout that cannot hold its width. These are programming
// errors and are never returned as error values.
//
// Builds with the smallbitset_unchecked tag skip the checks.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return "smallbitset: " + e.Op + ": " + e.Msg
}

func fail(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

func checkIndex[L Layout](op string, i int) {
	if !checks {
		return
	}
	if n := widthOf[L](); i < 0 || i >= n {
		fail(op, "bit index %d out of range [0, %d)", i, n)
	}
}
