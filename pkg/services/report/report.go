// Package report assembles briefing sections into the delivered document.
package report

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

const briefingTemplate = `<b>[ 🏢 {{.Unit}} 데일리 브리핑 : {{.Date}} ]</b>

{{range .Sections}}{{.Emoji}} <b>{{.Title}}</b>
<blockquote>{{range .Lines}}{{.}}
{{end}}</blockquote>
{{end}}{{with .Summary}}🤖 <b>오늘 회의 핵심 5줄 요약 (AI)</b>
<blockquote>{{.}}</blockquote>{{end}}`

var tmpl = template.Must(template.New("briefing").Parse(briefingTemplate))

type view struct {
	Unit     string
	Date     string
	Sections []domain.Section
	Summary  string
}

// Assemble renders the header, the sections in dataset order and, when non-blank, the AI
// summary. Output depends only on its arguments.
func Assemble(unit domain.UnitConfig, generated time.Time, sections []domain.Section, aiSummary string) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, view{
		Unit:     html.EscapeString(unit.Name),
		Date:     domain.FormatDate(generated),
		Sections: ordered(sections),
		Summary:  html.EscapeString(strings.TrimSpace(aiSummary)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render briefing: %w", err)
	}
	return sb.String(), nil
}

func ordered(sections []domain.Section) []domain.Section {
	rank := make(map[domain.Dataset]int, len(domain.Datasets))
	for i, ds := range domain.Datasets {
		rank[ds] = i
	}

	out := append([]domain.Section(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i].Dataset] < rank[out[j].Dataset]
	})
	return out
}
