package dataflow

import (
	"context"
	"sync"
	"time"
)

// Stream is a read-only channel of messages.
type Stream[T any] <-chan T

// From creates a stream from a slice of data.
func From[T any](ctx context.Context, items ...T) Stream[T] {
	out := make(chan T, len(items))
	go func() {
		defer close(out)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case out <- item:
			}
		}
	}()
	return out
}

// Map transforms the stream using fn. Items whose fn fails (after retries) are
// passed to the error handler and dropped.
func Map[In, Out any](ctx context.Context, input Stream[In], fn func(In) (Out, error), opts ...Option) Stream[Out] {
	cfg := newConfig(opts)
	out := make(chan Out, cfg.bufferSize)

	var wg sync.WaitGroup
	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok {
					return
				}

				var res Out
				err := cfg.run(ctx, func() error {
					var fnErr error
					res, fnErr = fn(msg)
					return fnErr
				})
				if err != nil {
					if cfg.errorHandler != nil {
						cfg.errorHandler(err)
					}
					continue
				}

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go worker()
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Batch groups consecutive items into slices of at most size. The last batch may be short.
func Batch[T any](ctx context.Context, input Stream[T], size int) Stream[[]T] {
	if size < 1 {
		size = 1
	}
	out := make(chan []T)

	go func() {
		defer close(out)
		batch := make([]T, 0, size)
		emit := func() bool {
			select {
			case <-ctx.Done():
				return false
			case out <- batch:
				batch = make([]T, 0, size)
				return true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok {
					if len(batch) > 0 {
						emit()
					}
					return
				}
				batch = append(batch, msg)
				if len(batch) == size && !emit() {
					return
				}
			}
		}
	}()

	return out
}

// ForEach executes fn for every item in the stream and blocks until the stream
// is exhausted or ctx is cancelled. It returns the first unhandled error.
func ForEach[T any](ctx context.Context, input Stream[T], fn func(T) error, opts ...Option) error {
	cfg := newConfig(opts)

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok {
					return
				}
				err := cfg.run(ctx, func() error { return fn(msg) })
				if err == nil {
					continue
				}
				if cfg.errorHandler != nil && cfg.errorHandler(err) {
					continue
				}
				errOnce.Do(func() { firstErr = err })
			}
		}
	}

	wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go worker()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return firstErr
}

// run calls op once plus up to maxRetries more times while it fails.
func (c *config) run(ctx context.Context, op func() error) error {
	err := op()
	for i := 1; err != nil && i <= c.maxRetries; i++ {
		if c.backoff != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff(i)):
			}
		}
		err = op()
	}
	return err
}
