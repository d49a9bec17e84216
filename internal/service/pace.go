package service

import (
	"context"
	"time"
)

// pause blocks for d or until ctx is done. Page loops call it between pages
// instead of recursing, so the stack stays flat however many pages there are.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
