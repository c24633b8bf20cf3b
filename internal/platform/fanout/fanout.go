// Package fanout runs a function over a slice with bounded concurrency and
// returns the results in input order.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome for one item. Err is nil on success.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most maxWorkers goroutines at a time.
// results[i] always belongs to items[i].
//
// An item whose turn comes after ctx is done records ctx.Err() without
// calling fn. Calls already in flight run to completion; fn must watch ctx
// itself if it can block. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}
			// Both cases may be ready at once; cancellation wins.
			if err := ctx.Err(); err != nil {
				results[idx] = Result[R]{Err: err}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Collect splits results into the successful values, in order, and the
// joined errors of the failures.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	return values, errors.Join(errs...)
}
