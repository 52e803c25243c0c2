// Package sections turns the records of each dataset into one titled briefing block.
package sections

import (
	"html"
	"strings"
	"time"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

// Builder renders one section from records already narrowed by the section's query.
type Builder func(records []domain.Record, w domain.DateWindow) domain.Section

// Definition ties a dataset to the query that feeds it and the builder that renders it.
type Definition struct {
	Dataset domain.Dataset
	Window  func(today time.Time) domain.DateWindow
	Query   func(databaseID string, w domain.DateWindow) domain.Query
	Build   Builder
}

// Definitions returns the six sections in briefing order.
func Definitions() []Definition {
	return []Definition{
		{Dataset: domain.DatasetPnL, Window: domain.MonthToDate, Query: pnlQuery, Build: BuildPnL},
		{Dataset: domain.DatasetSurvey, Window: domain.TrailingWeek, Query: surveyQuery, Build: BuildSurvey},
		{Dataset: domain.DatasetSales, Window: domain.TrailingWeek, Query: salesQuery, Build: BuildSales},
		{Dataset: domain.DatasetEval, Window: domain.TrailingWeek, Query: evalQuery, Build: BuildEval},
		{Dataset: domain.DatasetIssue, Window: domain.TrailingWeek, Query: issueQuery, Build: BuildIssues},
		{Dataset: domain.DatasetMeeting, Window: domain.TrailingWeek, Query: meetingQuery, Build: BuildMeeting},
	}
}

const (
	issueBullet    = "\u3164\u3164\u25aa\ufe0f "
	issueSubBullet = "\u3164\u3164\u3164\u3164\u2514 "
)

func text(cell *domain.PropertyCell) string {
	return html.EscapeString(extract.Value(cell))
}

// indentedLines renders every non-blank line of a multi-line field as an indented bullet.
// Lines that are only a bullet marker, including the placeholder, are dropped.
func indentedLines(body string) []string {
	var lines []string
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		item := extract.ParseListLine(ln)
		content := strings.TrimSpace(item.Text)
		if content == "" {
			continue
		}
		prefix := issueBullet
		if item.Level == extract.ItemSub {
			prefix = issueSubBullet
		}
		lines = append(lines, prefix+html.EscapeString(content))
	}
	return lines
}

func sinceQuery(databaseID, property string, since time.Time, dir domain.SortDirection) domain.Query {
	return domain.Query{
		DatabaseID: databaseID,
		Filter:     &domain.DateFilter{Property: property, OnOrAfter: since},
		Sorts:      []domain.Sort{{Property: property, Direction: dir}},
	}
}
