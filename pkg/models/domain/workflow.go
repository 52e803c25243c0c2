package domain

import "time"

type OutcomeStatus string

const (
	OutcomeDelivered OutcomeStatus = "delivered"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomeSkipped   OutcomeStatus = "skipped"
)

// Outcome is the result of one unit's pipeline run.
type Outcome struct {
	RunID      string
	Unit       string
	Slot       time.Time
	Status     OutcomeStatus
	Reason     string
	StartedAt  time.Time
	FinishedAt time.Time
}

func (o Outcome) Failed() bool {
	return o.Status == OutcomeFailed
}

// RunReport aggregates the outcomes of one dispatch.
type RunReport struct {
	Weekday  Weekday
	Hour     int
	Outcomes []Outcome
}

func (r RunReport) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
