package port

import "time"

//go:generate mockgen -source=clock.go -destination=mock/clock.go -package=mock

// Clock abstracts wall-clock reads so date-sensitive logic (due dates,
// late flags, overdue queries) stays deterministic under test.
type Clock interface {
	Now() time.Time
	// Today is Now truncated to a calendar date (midnight UTC).
	Today() time.Time
}
