package conformance

import "fmt"

// MismatchError reports the first step at which a Set diverged from the
// reference. Step 0 is the initial all-zero state.
type MismatchError struct {
	Width int
	Seed  int64
	Step  int
	Op    Op
	Index int
	Shift uint
	Check string
	Got   string
	Want  string
}

func (e *MismatchError) Error() string {
	if e.Step == 0 {
		return fmt.Sprintf("width %d: initial state: %s = %s, want %s", e.Width, e.Check, e.Got, e.Want)
	}
	return fmt.Sprintf("width %d: step %d (%s index=%d shift=%d seed=%d): %s = %s, want %s",
		e.Width, e.Step, e.Op, e.Index, e.Shift, e.Seed, e.Check, e.Got, e.Want)
}
