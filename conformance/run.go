package conformance

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// RunWidths runs every case concurrently, at most WithConcurrency at a
// time. The first failure cancels the remaining cases and is returned.
func RunWidths(ctx context.Context, cases []Case, opts ...Option) error {
	o := buildOptions(opts)
	resolved := func(dst *options) { *dst = o }

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	var passed atomic.Int64
	for _, c := range cases {
		c := c
		g.Go(func() error {
			if err := c.Run(gctx, resolved); err != nil {
				o.logger.LogWidthFailed(gctx, c.Width(), err)
				return err
			}
			passed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	o.logger.LogRunCompleted(ctx, len(cases), int(passed.Load()), err)
	return err
}
