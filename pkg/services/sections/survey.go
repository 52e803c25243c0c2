package sections

import (
	"fmt"
	"html"
	"strings"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const (
	surveyDateProperty    = "응답일시"
	surveyGender          = "성별"
	surveyAge             = "연령대"
	surveyTaste           = "맛/구성 평가"
	surveyKindness        = "직원 친절도 평가"
	surveyValue           = "가격 대비 만족도 평가"
	surveyImprovement     = "개선 사항"
	surveyRevisit         = "재방문 의사 여부"
	suggestionRuneLimit   = 20
	surveyGuideLine       = "<b>(가이드: 맛 / 친절 / 가격)</b>"
	surveySeparator       = "──────────────────"
	surveySuggestionLabel = "\u3164\u26a0\ufe0f 건의: "
)

// affirmativeRevisit are the answers counted as intending to come back.
var affirmativeRevisit = []string{"있다", "예"}

func surveyQuery(databaseID string, w domain.DateWindow) domain.Query {
	return sinceQuery(databaseID, surveyDateProperty, w.Start, domain.SortAscending)
}

// SurveyItem is one survey response reduced to the fields shown in the briefing.
type SurveyItem struct {
	URL        string
	Gender     string
	Age        string
	Taste      int
	Kindness   int
	Value      int
	Suggestion string
	Revisit    bool
}

func NewSurveyItem(r domain.Record) SurveyItem {
	return SurveyItem{
		URL:        r.URL,
		Gender:     extract.Value(r.Property(surveyGender)),
		Age:        extract.Value(r.Property(surveyAge)),
		Taste:      extract.Rating(extract.Value(r.Property(surveyTaste))),
		Kindness:   extract.Rating(extract.Value(r.Property(surveyKindness))),
		Value:      extract.Rating(extract.Value(r.Property(surveyValue))),
		Suggestion: suggestion(extract.Value(r.Property(surveyImprovement))),
		Revisit:    willRevisit(extract.Value(r.Property(surveyRevisit))),
	}
}

func suggestion(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == extract.Placeholder || raw == "" {
		return ""
	}
	runes := []rune(raw)
	if len(runes) > suggestionRuneLimit {
		runes = runes[:suggestionRuneLimit]
	}
	return string(runes) + "..."
}

func willRevisit(answer string) bool {
	for _, yes := range affirmativeRevisit {
		if strings.Contains(answer, yes) {
			return true
		}
	}
	return false
}

// BuildSurvey lists every response of the trailing week in response order.
func BuildSurvey(records []domain.Record, _ domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetSurvey, Title: "2. 고객 설문 핵심 피드백", Emoji: "💬"}
	if len(records) == 0 {
		s.Lines = []string{"- 최근 7일 설문 데이터 없음"}
		return s
	}

	s.Lines = []string{surveyGuideLine, surveySeparator}
	for i, r := range records {
		item := NewSurveyItem(r)
		revisit := "X"
		if item.Revisit {
			revisit = "O"
		}
		s.Lines = append(s.Lines,
			fmt.Sprintf("<a href='%s'><b>%d. %s/%s [재방문:%s]</b></a>",
				html.EscapeString(item.URL), i+1,
				html.EscapeString(item.Gender), html.EscapeString(item.Age), revisit),
			fmt.Sprintf("\u3164점수: %d / %d / %d", item.Taste, item.Kindness, item.Value),
		)
		if item.Suggestion != "" {
			s.Lines = append(s.Lines, surveySuggestionLabel+html.EscapeString(item.Suggestion))
		}
		s.Lines = append(s.Lines, "")
	}
	return s
}
