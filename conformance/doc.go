// Package conformance checks smallbitset.Set against an arbitrary-width
// reference bit vector.
//
// Each Case drives one width through a random sequence of operations
// (single-bit set, clear and toggle, flip, set-all, reset-all, shifts, and
// AND/OR/XOR against a shifted copy of itself) and compares the Set with a
// github.com/bits-and-blooms/bitset reference after every step: rendered
// text, All/Any/None/Count, every Test(i), and the Parse round trip.
//
//	err := conformance.RunWidths(ctx, conformance.Standard(),
//	    conformance.WithIterations(1<<14),
//	    conformance.WithLogger(conformance.NewLogger(slog.NewTextHandler(os.Stderr, nil))),
//	)
//
// Cases are independent values and RunWidths runs them concurrently; no two
// goroutines ever share a Set.
package conformance
