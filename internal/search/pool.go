package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// mapParallel runs fn over items on at most workers goroutines and returns
// the results in item order. The first error cancels the remaining tasks and
// is returned once every started task has finished.
func mapParallel[T, R any](ctx context.Context, workers int, items []T, fn func(T) (R, error)) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]R, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, err := fn(items[i])
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
