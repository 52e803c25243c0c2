package briefing

import (
	"context"
	"time"

	"github.com/de-tools/store-briefing/pkg/adapters"
	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/models/store"
	"github.com/de-tools/store-briefing/pkg/store/duckdb/runs"
)

// StoreLedger keeps run outcomes in the run store.
type StoreLedger struct {
	runs runs.Store
}

func NewLedger(s runs.Store) *StoreLedger {
	return &StoreLedger{runs: s}
}

func (l *StoreLedger) Delivered(ctx context.Context, unit string, slot time.Time) (bool, error) {
	return l.runs.Delivered(ctx, unit, slot)
}

func (l *StoreLedger) Record(ctx context.Context, outcome domain.Outcome) error {
	return l.runs.Record(ctx, adapters.MapDomainOutcomeToStore(outcome))
}

// History lists recorded outcomes, newest first.
func (l *StoreLedger) History(ctx context.Context, units []string, limit int) ([]domain.Outcome, error) {
	rows, err := l.runs.List(ctx, store.RunFilter{Units: units, Limit: limit})
	if err != nil {
		return nil, err
	}
	outcomes := make([]domain.Outcome, 0, len(rows))
	for _, row := range rows {
		outcomes = append(outcomes, adapters.MapStoreRunToDomain(row))
	}
	return outcomes, nil
}
