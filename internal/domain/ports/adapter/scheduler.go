package adapter

import (
	"context"
	"time"
)

// RetryScheduler creates a one-shot trigger that re-injects body into the
// work queue at the given time and deletes itself after firing. Each trigger
// gets a unique name so concurrently scheduled retries cannot collide.
type RetryScheduler interface {
	ScheduleRedelivery(ctx context.Context, body string, at time.Time) error
}
