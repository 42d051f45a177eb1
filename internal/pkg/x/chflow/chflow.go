// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, so that channel operations respect cancellation
// and deadlines.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first.
// It returns false if ctx was done before the value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Collect drains ch until it is closed or ctx is done and returns the
// values received so far, in order.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	var out []T
	for {
		data, ok := Receive(ctx, ch)
		if !ok {
			return out
		}

		out = append(out, data)
	}
}
