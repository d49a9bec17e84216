package domain

import "time"

// RunStats holds statistics about a single pipeline invocation.
type RunStats struct {
	Leftover  int
	Enqueued  int
	Delivered int
	Pages     int
	Duration  time.Duration
}

// DrainStats summarises one drain of the obligation queue.
type DrainStats struct {
	Delivered int
	Pages     int
}

type RunState struct {
	ID             int64     `db:"id"`
	Pipeline       string    `db:"pipeline"`
	LastRunAt      time.Time `db:"last_run_at"`
	TotalEnqueued  int64     `db:"total_enqueued"`
	TotalDelivered int64     `db:"total_delivered"`
}
