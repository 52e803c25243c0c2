package sections

import (
	"fmt"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const meetingBody = "내용"

func meetingQuery(databaseID string, _ domain.DateWindow) domain.Query {
	return domain.Query{
		DatabaseID: databaseID,
		Sorts:      []domain.Sort{{Property: entryDateProperty, Direction: domain.SortDescending}},
		PageSize:   1,
	}
}

// BuildMeeting shows the latest meeting note.
func BuildMeeting(records []domain.Record, _ domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetMeeting, Title: "6. 회의 리마인드", Emoji: "📝"}
	if len(records) == 0 {
		s.Lines = []string{"- 회의록 없음"}
		return s
	}

	r := records[0]
	s.Lines = []string{fmt.Sprintf("<b>[%s] %s</b>", text(r.Property(entryDateProperty)), text(r.Property(logProperty)))}
	s.Lines = append(s.Lines, indentedLines(extract.Value(r.Property(meetingBody)))...)
	return s
}
