package conformance

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/hupe1980/smallbitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iterations(t *testing.T) int {
	if testing.Short() {
		return 1 << 9
	}
	return DefaultIterations
}

func TestStandard(t *testing.T) {
	cases := Standard()
	require.Len(t, cases, 128)
	for i, c := range cases {
		require.Equal(t, i+1, c.Width())
	}

	err := RunWidths(context.Background(), cases, WithIterations(iterations(t)))
	require.NoError(t, err)
}

func TestExtended(t *testing.T) {
	cases := Extended()
	widths := make([]int, 0, len(cases))
	for _, c := range cases {
		widths = append(widths, c.Width())
	}
	assert.Equal(t, []int{192, 256, 512, 1024}, widths)

	err := RunWidths(context.Background(), cases, WithIterations(iterations(t)/4))
	require.NoError(t, err)
}

func TestRunIsReproducible(t *testing.T) {
	c := For[smallbitset.W73]()
	require.NoError(t, c.Run(context.Background(), WithSeed(1), WithIterations(2000)))
	require.NoError(t, c.Run(context.Background(), WithSeed(1), WithIterations(2000)))
}

func TestRunWidthsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunWidths(ctx, Standard()[:8], WithIterations(4*ctxCheckInterval))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareDetectsDivergence(t *testing.T) {
	var s smallbitset.Set[smallbitset.W9]
	ref := newReference(9)
	assert.Nil(t, compare(s, ref))

	s.Set(8)
	err := compare(s, ref)
	require.NotNil(t, err)
	assert.Equal(t, "String", err.Check)
	assert.Equal(t, "100000000", err.Got)
	assert.Equal(t, "000000000", err.Want)
}

func TestReferenceShift(t *testing.T) {
	ref := newReference(10)
	ref.bits.Set(0).Set(5).Set(9)

	left := ref.shifted(1, true)
	assert.True(t, left.Test(1))
	assert.True(t, left.Test(6))
	assert.False(t, left.Test(9))
	assert.Equal(t, uint(2), left.Count())

	right := ref.shifted(5, false)
	assert.True(t, right.Test(0))
	assert.True(t, right.Test(4))
	assert.Equal(t, uint(2), right.Count())

	assert.Equal(t, uint(0), ref.shifted(10, true).Count())
	assert.Equal(t, "1000100001", ref.String())
}

func TestReferenceBulk(t *testing.T) {
	ref := newReference(13)
	ref.setAll()
	assert.Equal(t, 13, ref.count())

	ref.bits.Clear(4)
	ref.flipAll()
	assert.Equal(t, 1, ref.count())
	assert.True(t, ref.bits.Test(4))
}

func TestApplyOpMirrorsReference(t *testing.T) {
	var s smallbitset.Set[smallbitset.W65]
	ref := newReference(65)

	steps := []struct {
		op Op
		i  int
		k  uint
	}{
		{OpSetAll, 0, 0},
		{OpShiftLeft, 0, 3},
		{OpToggle, 64, 0},
		{OpXorShiftedLeft, 0, 9},
		{OpAndShiftedRight, 0, 7},
		{OpOrShiftedRight, 0, 64},
		{OpClear, 0, 0},
		{OpFlipAll, 0, 0},
		{OpShiftRight, 0, 130},
		{OpSet, 64, 0},
		{OpResetAll, 0, 0},
	}

	for _, st := range steps {
		applyOp(&s, ref, st.op, st.i, st.k)
		require.Nil(t, compare(s, ref), "after %s", st.op)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "set", OpSet.String())
	assert.Equal(t, "and-shifted-right", OpAndShiftedRight.String())
	assert.Equal(t, "unknown", numOps.String())
}

func TestMismatchError(t *testing.T) {
	err := &MismatchError{Width: 9, Step: 3, Op: OpShiftLeft, Shift: 4, Seed: 7, Check: "Count", Got: "2", Want: "1"}
	assert.Equal(t, "width 9: step 3 (shift-left index=0 shift=4 seed=7): Count = 2, want 1", err.Error())

	initial := &MismatchError{Width: 9, Check: "Any", Got: "true", Want: "false"}
	assert.Equal(t, "width 9: initial state: Any = true, want false", initial.Error())
}

func TestOptions(t *testing.T) {
	o := buildOptions([]Option{WithIterations(0), WithConcurrency(0), WithLogger(nil)})
	assert.Equal(t, DefaultIterations, o.iterations)
	assert.Positive(t, o.concurrency)
	assert.NotNil(t, o.logger)

	o = buildOptions([]Option{WithIterations(10), WithConcurrency(3), WithSeed(99)})
	assert.Equal(t, 10, o.iterations)
	assert.Equal(t, 3, o.concurrency)
	assert.Equal(t, int64(99), o.seed)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cases := []Case{For[smallbitset.W1](), For[smallbitset.W9]()}
	require.NoError(t, RunWidths(context.Background(), cases, WithIterations(64), WithLogger(logger)))

	var msgs []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Contains(t, msgs, "width passed")
	assert.Equal(t, "conformance run completed", msgs[len(msgs)-1])
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithWidth(73).WithSeed(5)

	logger.LogWidthFailed(context.Background(), 73, context.Canceled)
	assert.Contains(t, buf.String(), "width failed")
	assert.Contains(t, buf.String(), "seed=5")

	quiet := NewLogger(nil)
	ctx := context.Background()
	assert.False(t, quiet.Enabled(ctx, slog.LevelInfo))
	assert.True(t, quiet.Enabled(ctx, slog.LevelError))
}
