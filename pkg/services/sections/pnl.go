package sections

import (
	"html"
	"sort"
	"strings"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const (
	pnlDateProperty = "날짜"
	// labelTag marks the properties holding preformatted summary text.
	labelTag = "(LABEL)"
)

func pnlQuery(databaseID string, w domain.DateWindow) domain.Query {
	q := sinceQuery(databaseID, pnlDateProperty, w.Start, domain.SortDescending)
	q.PageSize = 1
	return q
}

// BuildPnL renders the label fields of the latest month-to-date record.
func BuildPnL(records []domain.Record, _ domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetPnL, Title: "1. 손익 요약 (이번 달)", Emoji: "📊"}
	if len(records) == 0 {
		s.Lines = []string{"- 이번 달 데이터 없음"}
		return s
	}

	for _, label := range Labels(records[0]) {
		for _, ln := range strings.Split(label, "\n") {
			s.Lines = append(s.Lines, html.EscapeString(extract.RewriteListLine(ln)))
		}
	}
	if len(s.Lines) == 0 {
		s.Lines = []string{"- 이번 달 데이터 없음"}
	}
	return s
}

// Labels returns the values of every present label property, sorted lexicographically.
func Labels(r domain.Record) []string {
	var labels []string
	for name, cell := range r.Properties {
		if !strings.Contains(name, labelTag) {
			continue
		}
		if v := extract.Value(cell); v != extract.Placeholder {
			labels = append(labels, v)
		}
	}
	sort.Strings(labels)
	return labels
}
