package sections

import (
	"html"
	"strings"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const evalOverview = "View"

func evalQuery(databaseID string, _ domain.DateWindow) domain.Query {
	return domain.Query{DatabaseID: databaseID, PageSize: 1}
}

// BuildEval shows the overview text of the first record verbatim.
func BuildEval(records []domain.Record, _ domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetEval, Title: "4. 종합 평가", Emoji: "⭐"}
	if len(records) == 0 {
		s.Lines = []string{"- 데이터 없음"}
		return s
	}
	overview := strings.TrimSpace(extract.Value(records[0].Property(evalOverview)))
	s.Lines = []string{html.EscapeString(overview)}
	return s
}
