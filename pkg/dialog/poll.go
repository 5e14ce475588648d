package dialog

import (
	"context"
	"time"

	"github.com/jkelaty/panorama-stitching/internal/log"
)

// await runs fn in a goroutine and polls for its answer once per interval
// until it arrives or ctx is done.
func await[T any](ctx context.Context, interval time.Duration, what string, fn func() (T, error)) (T, error) {
	type answer struct {
		val T
		err error
	}

	done := make(chan answer, 1)
	go func() {
		v, err := fn()
		done <- answer{val: v, err: err}
	}()

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case a := <-done:
			return a.val, a.err
		case <-tick.C:
			log.Debug("dialog pending", "dialog", what)
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
