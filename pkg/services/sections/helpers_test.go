package sections

import (
	"time"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

var kst = time.FixedZone("KST", 9*60*60)

// today is Friday 2025-03-14 in KST.
var today = time.Date(2025, 3, 14, 12, 0, 0, 0, kst)

func richText(s string) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellRichText, RichText: []domain.TextRun{{PlainText: s}}}
}

func title(s string) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellTitle, Title: []domain.TextRun{{PlainText: s}}}
}

func option(s string) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellSelect, Select: &domain.SelectOption{Name: s}}
}

func number(v float64) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellNumber, Number: &v}
}

func date(s string) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellDate, Date: &domain.DateValue{Start: s}}
}

func rollup(cells ...*domain.PropertyCell) *domain.PropertyCell {
	return &domain.PropertyCell{Kind: domain.CellRollup, Rollup: &domain.Rollup{Type: domain.RollupArray, Array: cells}}
}

func record(id string, props map[string]*domain.PropertyCell) domain.Record {
	return domain.Record{ID: id, URL: "https://www.notion.so/" + id, Properties: props}
}
