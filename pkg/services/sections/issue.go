package sections

import (
	"fmt"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const (
	entryDateProperty = "입력 날짜"
	logProperty       = "Log"
	issueBody         = "이슈"
)

func issueQuery(databaseID string, w domain.DateWindow) domain.Query {
	return sinceQuery(databaseID, entryDateProperty, w.Start, domain.SortAscending)
}

// BuildIssues numbers every issue entry of the trailing week with its detail lines.
func BuildIssues(records []domain.Record, _ domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetIssue, Title: "5. 주간 이슈", Emoji: "\u26a0\ufe0f"}
	if len(records) == 0 {
		s.Lines = []string{"- 이슈 없음"}
		return s
	}

	for i, r := range records {
		s.Lines = append(s.Lines, fmt.Sprintf("%d. <b>%s</b>", i+1, text(r.Property(logProperty))))
		s.Lines = append(s.Lines, indentedLines(extract.Value(r.Property(issueBody)))...)
	}
	return s
}
