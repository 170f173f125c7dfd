package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for every element of items with at most workers
// goroutines. It waits for all started actions and returns the first error;
// once an action fails the context passed to the rest is cancelled and no
// further elements are started. workers < 1 runs the elements in order on
// the calling goroutine.
func ForEach[T any](ctx context.Context, workers int, items []T, action func(ctx context.Context, idx int, value T) error) error {
	if workers < 1 {
		for idx, value := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := action(ctx, idx, value); err != nil {
				return err
			}
		}
		return nil
	}

	errGroup, gctx := errgroup.WithContext(ctx)
	errGroup.SetLimit(workers)

	for idx, value := range items {
		if gctx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			return action(gctx, idx, value)
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
