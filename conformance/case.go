package conformance

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/hupe1980/smallbitset"
)

// ctxCheckInterval is how many steps run between cancellation checks.
const ctxCheckInterval = 256

// Case checks one Set width against the reference.
type Case interface {
	// Width returns the bit width under test.
	Width() int
	// Run performs the randomized comparison and returns a *MismatchError
	// on the first divergence, or the context error if cancelled.
	Run(ctx context.Context, opts ...Option) error
}

// For returns the Case for layout L.
func For[L smallbitset.Layout]() Case {
	return widthCase[L]{}
}

type widthCase[L smallbitset.Layout] struct{}

func (widthCase[L]) Width() int {
	return smallbitset.Set[L]{}.Len()
}

func (c widthCase[L]) Run(ctx context.Context, opts ...Option) error {
	o := buildOptions(opts)

	n := c.Width()
	seed := o.seed + int64(n)
	rng := rand.New(rand.NewSource(seed))

	var s smallbitset.Set[L]
	ref := newReference(n)

	if err := compare(s, ref); err != nil {
		err.Width, err.Seed = n, seed
		return err
	}

	for step := 1; step <= o.iterations; step++ {
		if step%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		op := Op(rng.Intn(int(numOps)))
		i := rng.Intn(n)
		k := uint(rng.Intn(2*n + 1))
		applyOp(&s, ref, op, i, k)

		if err := compare(s, ref); err != nil {
			err.Width, err.Seed, err.Step = n, seed, step
			err.Op, err.Index, err.Shift = op, i, k
			return err
		}
	}

	o.logger.LogWidthPassed(ctx, n, o.iterations)
	return nil
}

func applyOp[L smallbitset.Layout](s *smallbitset.Set[L], ref *reference, op Op, i int, k uint) {
	switch op {
	case OpSet:
		s.Set(i)
		ref.bits.Set(uint(i))
	case OpClear:
		s.Reset(i)
		ref.bits.Clear(uint(i))
	case OpFlipAll:
		s.FlipAll()
		ref.flipAll()
	case OpResetAll:
		s.ResetAll()
		ref.bits.ClearAll()
	case OpSetAll:
		s.SetAll()
		ref.setAll()
	case OpToggle:
		r := s.At(i)
		r.Assign(r.Not())
		ref.bits.Flip(uint(i))
	case OpShiftRight:
		s.ShiftRight(k)
		ref.bits = ref.shifted(k, false)
	case OpShiftLeft:
		s.ShiftLeft(k)
		ref.bits = ref.shifted(k, true)
	case OpOrShiftedRight:
		s.Or(s.Shr(k))
		ref.bits.InPlaceUnion(ref.shifted(k, false))
	case OpXorShiftedLeft:
		s.Xor(s.Shl(k))
		ref.bits.InPlaceSymmetricDifference(ref.shifted(k, true))
	case OpAndShiftedRight:
		s.And(s.Shr(k))
		ref.bits.InPlaceIntersection(ref.shifted(k, false))
	}
}

// compare returns a partially filled *MismatchError naming the first
// check on which s and ref disagree, or nil.
func compare[L smallbitset.Layout](s smallbitset.Set[L], ref *reference) *MismatchError {
	mismatch := func(check string, got, want any) *MismatchError {
		return &MismatchError{Check: check, Got: fmt.Sprint(got), Want: fmt.Sprint(want)}
	}

	text := s.String()
	if want := ref.String(); text != want {
		return mismatch("String", text, want)
	}

	count := ref.count()
	if got := s.Count(); got != count {
		return mismatch("Count", got, count)
	}
	if got, want := s.All(), count == s.Len(); got != want {
		return mismatch("All", got, want)
	}
	if got, want := s.Any(), ref.bits.Any(); got != want {
		return mismatch("Any", got, want)
	}
	if got, want := s.None(), ref.bits.None(); got != want {
		return mismatch("None", got, want)
	}
	for i := 0; i < s.Len(); i++ {
		if got, want := s.Test(i), ref.bits.Test(uint(i)); got != want {
			return mismatch(fmt.Sprintf("Test(%d)", i), got, want)
		}
	}

	parsed, err := smallbitset.Parse[L](text)
	if err != nil {
		return mismatch("Parse", err, nil)
	}
	if parsed != s {
		return mismatch("Parse", parsed, s)
	}
	return nil
}
