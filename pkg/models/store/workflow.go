package store

import "time"

// Run is one row of the briefing run ledger.
type Run struct {
	ID         string
	Unit       string
	Slot       time.Time
	Status     string
	Reason     *string
	StartedAt  time.Time
	FinishedAt time.Time
}

type RunFilter struct {
	Units  []string
	Status string
	Limit  int
}
