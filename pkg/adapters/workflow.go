package adapters

import (
	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/models/store"
)

func MapStoreRunToDomain(r store.Run) domain.Outcome {
	o := domain.Outcome{
		RunID:      r.ID,
		Unit:       r.Unit,
		Slot:       r.Slot,
		Status:     domain.OutcomeStatus(r.Status),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
	if r.Reason != nil {
		o.Reason = *r.Reason
	}
	return o
}

func MapDomainOutcomeToStore(o domain.Outcome) store.Run {
	r := store.Run{
		ID:         o.RunID,
		Unit:       o.Unit,
		Slot:       o.Slot,
		Status:     string(o.Status),
		StartedAt:  o.StartedAt,
		FinishedAt: o.FinishedAt,
	}
	if o.Reason != "" {
		reason := o.Reason
		r.Reason = &reason
	}
	return r
}
