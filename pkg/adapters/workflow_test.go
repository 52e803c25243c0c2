package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

func TestOutcomeReason(t *testing.T) {
	slot := time.Date(2025, 3, 14, 3, 0, 0, 0, time.UTC)

	t.Run("empty reason is stored as null", func(t *testing.T) {
		run := MapDomainOutcomeToStore(domain.Outcome{RunID: "r1", Unit: "심금", Slot: slot, Status: domain.OutcomeDelivered})
		assert.Nil(t, run.Reason)
		assert.Equal(t, "delivered", run.Status)
	})

	t.Run("failure reason survives the ledger", func(t *testing.T) {
		in := domain.Outcome{RunID: "r2", Unit: "심금", Slot: slot, Status: domain.OutcomeFailed, Reason: "timeout"}
		run := MapDomainOutcomeToStore(in)
		require.NotNil(t, run.Reason)
		assert.Equal(t, in, MapStoreRunToDomain(run))
	})
}

func TestMapDomainRunReportToAPI(t *testing.T) {
	report := domain.RunReport{
		Weekday: 4,
		Hour:    12,
		Outcomes: []domain.Outcome{
			{Unit: "행궁 테네스", Status: domain.OutcomeDelivered},
			{Unit: "심금", Status: domain.OutcomeFailed, Reason: "boom"},
		},
	}

	got := MapDomainRunReportToAPI(report)
	assert.Equal(t, 1, got.Delivered)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, 0, got.Skipped)
	require.Len(t, got.Runs, 2)
	assert.Equal(t, "boom", got.Runs[1].Reason)
}

func TestMapDomainSlotToAPI(t *testing.T) {
	got := MapDomainSlotToAPI(domain.Slot{Weekday: 4, Hour: 12, Unit: "행궁 테네스"})
	assert.Equal(t, "Friday", got.WeekdayName)
}
