package ports

import (
	"context"
	"time"
)

// Clock abstracts time so simulations can run against a fake in tests.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is cancelled, returning ctx.Err()
	// in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}
