package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////

// Result is the settlement of one work item. Err is per-item: a failed item
// never affects its siblings.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn over every item with at most maxWorkers goroutines and waits
// for all of them to settle. Results keep the input order. Errors are
// captured per index, never short-circuiting the rest of the batch.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	maxWorkers int,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))

	var group errgroup.Group
	group.SetLimit(maxWorkers)

	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			value, err := fn(ctx, item)
			results[i] = Result[R]{Value: value, Err: err}
			return nil
		})
	}

	// group errors are impossible here, every settlement lands in results
	_ = group.Wait()

	return results
}
