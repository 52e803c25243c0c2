package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

// Reporter outputs the unit table and schedule in a plain text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const scheduleTemplate = `Units:
{{range .Units}}- {{.Name}} (chat {{.ChatID}})
{{end}}
Schedule (UTC+9):
{{range .Schedule}}- {{printf "%-9s" .Weekday.String}} {{printf "%02d" .Hour}}:00  {{.Unit}}
{{else}}- none
{{end}}`

var schedule = template.Must(template.New("schedule").Parse(scheduleTemplate))

func (c *Reporter) Handle(cfg domain.Config) error {
	if err := schedule.Execute(c.writer, cfg); err != nil {
		return fmt.Errorf("failed to render schedule: %w", err)
	}
	return nil
}
