// internal/app/system/fanout/fanout.go
//
// Package fanout runs one fetch per key with bounded concurrency and keeps
// every outcome, so a caller can reduce over partial results.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one key. Exactly one of Value or Err is meaningful.
type Result[T any] struct {
	Key   string
	Value T
	Err   error
}

// OK reports whether the fetch for this key succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Each calls fn once per key with at most limit calls in flight and returns
// the results in key order. A failing key is tagged on its Result and does
// not stop the others. limit < 1 is treated as 1 (sequential).
//
// If ctx is canceled before a key starts, that key's Err is ctx.Err().
func Each[T any](ctx context.Context, keys []string, limit int, fn func(context.Context, string) (T, error)) []Result[T] {
	if limit < 1 {
		limit = 1
	}
	out := make([]Result[T], len(keys))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, key := range keys {
		g.Go(func() error {
			out[i].Key = key
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			v, err := fn(ctx, key)
			out[i].Value = v
			out[i].Err = err
			return nil
		})
	}
	_ = g.Wait()
	return out
}
