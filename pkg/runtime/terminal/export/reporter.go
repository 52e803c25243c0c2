package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/width"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/dispatch"
)

type TableConfig struct {
	UnitWidth   int
	StatusWidth int
	SlotWidth   int
	ReasonWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		UnitWidth:   16,
		StatusWidth: 10,
		SlotWidth:   16,
		ReasonWidth: 60,
	}
}

// Reporter prints run outcomes as a table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type table struct {
	Title    string
	Outcomes []domain.Outcome
}

const tableTemplate = `
{{.Title}}

{{separator}}
{{formatRow "Unit" "Status" "Slot" "Reason"}}
{{separator}}
{{range .Outcomes}}{{formatRow .Unit (print .Status) (slot .Slot) .Reason}}
{{else}}{{formatRow "-" "" "" "no unit due"}}
{{end}}{{separator}}
`

// Handle prints the outcomes of one dispatch.
func (c *Reporter) Handle(report domain.RunReport) error {
	title := fmt.Sprintf("Dispatch %s %02d:00 (UTC+9): %d delivered, %d failed, %d skipped",
		report.Weekday, report.Hour,
		report.Count(domain.OutcomeDelivered),
		report.Count(domain.OutcomeFailed),
		report.Count(domain.OutcomeSkipped))
	return c.render(table{Title: title, Outcomes: report.Outcomes})
}

// HandleHistory prints ledger entries.
func (c *Reporter) HandleHistory(outcomes []domain.Outcome) error {
	return c.render(table{Title: fmt.Sprintf("Run history (%d)", len(outcomes)), Outcomes: outcomes})
}

func (c *Reporter) render(t table) error {
	funcMap := template.FuncMap{
		"formatRow": func(unit, status, slot, reason string) string {
			return fmt.Sprintf("| %s | %s | %s | %s |",
				pad(unit, c.config.UnitWidth),
				pad(status, c.config.StatusWidth),
				pad(slot, c.config.SlotWidth),
				pad(truncate(reason, c.config.ReasonWidth), c.config.ReasonWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.SlotWidth+2),
				strings.Repeat("-", c.config.ReasonWidth+2))
		},
		"slot": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.In(dispatch.Zone).Format("2006-01-02 15:04")
		},
	}

	tmpl, err := template.New("outcomes").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl.Execute(c.writer, t)
}

// columns is the terminal width of s; Hangul and other wide runes take two cells.
func columns(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func pad(s string, cells int) string {
	n := columns(s)
	if n >= cells {
		return s
	}
	return s + strings.Repeat(" ", cells-n)
}

func truncate(s string, cells int) string {
	if columns(s) <= cells {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if columns(b.String()+string(r)) > cells-3 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "..."
}
