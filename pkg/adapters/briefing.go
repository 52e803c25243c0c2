package adapters

import (
	"github.com/de-tools/store-briefing/pkg/models/api"
	"github.com/de-tools/store-briefing/pkg/models/domain"
)

func MapDomainUnitToAPI(u domain.UnitConfig) api.Unit {
	datasets := make(map[string]string, len(u.Datasets))
	for ds, id := range u.Datasets {
		datasets[string(ds)] = id
	}
	return api.Unit{Name: u.Name, ChatID: u.ChatID, Datasets: datasets}
}

func MapDomainSlotToAPI(s domain.Slot) api.Slot {
	return api.Slot{
		Weekday:     int(s.Weekday),
		WeekdayName: s.Weekday.String(),
		Hour:        s.Hour,
		Unit:        s.Unit,
	}
}

func MapDomainBriefingToAPI(b *domain.Briefing) *api.Briefing {
	if b == nil {
		return nil
	}

	sections := make([]api.Section, 0, len(b.Sections))
	for _, s := range b.Sections {
		sections = append(sections, api.Section{
			Dataset: string(s.Dataset),
			Title:   s.Title,
			Lines:   s.Lines,
		})
	}
	return &api.Briefing{
		Unit:        b.Unit.Name,
		GeneratedAt: b.GeneratedAt,
		Sections:    sections,
		AISummary:   b.AISummary,
		Text:        b.Text,
	}
}

func MapDomainOutcomeToAPI(o domain.Outcome) api.Run {
	return api.Run{
		ID:         o.RunID,
		Unit:       o.Unit,
		Slot:       o.Slot,
		Status:     string(o.Status),
		Reason:     o.Reason,
		StartedAt:  o.StartedAt,
		FinishedAt: o.FinishedAt,
	}
}

func MapDomainRunReportToAPI(r domain.RunReport) api.DispatchReport {
	runs := make([]api.Run, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		runs = append(runs, MapDomainOutcomeToAPI(o))
	}
	return api.DispatchReport{
		Weekday:   int(r.Weekday),
		Hour:      r.Hour,
		Delivered: r.Count(domain.OutcomeDelivered),
		Failed:    r.Count(domain.OutcomeFailed),
		Skipped:   r.Count(domain.OutcomeSkipped),
		Runs:      runs,
	}
}
