package reconcile

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// gather runs fn for every item with at most limit tasks in flight and
// returns the results in input order. Items whose error satisfies skip are
// dropped without affecting their siblings; any other error cancels the
// remaining tasks and is returned.
func gather[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error), skip func(error) bool) ([]R, error) {
	results := make([]R, len(items))
	kept := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				if skip != nil && skip(err) {
					return nil
				}
				return err
			}

			results[i] = r
			kept[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]R, 0, len(items))
	for i, r := range results {
		if kept[i] {
			out = append(out, r)
		}
	}

	return out, nil
}
