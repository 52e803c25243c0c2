// Package extract normalizes typed record cells into plain values.
package extract

import (
	"strconv"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

// Placeholder stands in for any absent or unreadable value.
const Placeholder = "-"

// Value returns the plain string form of a cell. It never panics and never returns an
// empty string for a missing or unrecognized cell.
func Value(cell *domain.PropertyCell) string {
	if cell == nil {
		return Placeholder
	}

	switch cell.Kind {
	case domain.CellNumber:
		return number(cell.Number)
	case domain.CellSelect:
		if cell.Select == nil || cell.Select.Name == "" {
			return Placeholder
		}
		return cell.Select.Name
	case domain.CellRichText:
		return firstRun(cell.RichText)
	case domain.CellTitle:
		return firstRun(cell.Title)
	case domain.CellFormula:
		return formula(cell.Formula)
	case domain.CellDate:
		return date(cell.Date)
	default:
		// rollups are only readable through Series
		return Placeholder
	}
}

func number(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func firstRun(runs []domain.TextRun) string {
	if len(runs) == 0 {
		return Placeholder
	}
	return runs[0].PlainText
}

func date(d *domain.DateValue) string {
	if d == nil || d.Start == "" {
		return Placeholder
	}
	return d.Start
}

func formula(f *domain.Formula) string {
	if f == nil {
		return Placeholder
	}

	switch f.Type {
	case "number":
		return number(f.Number)
	case "string":
		if f.String == nil || *f.String == "" {
			return Placeholder
		}
		return *f.String
	case "boolean":
		if f.Boolean == nil {
			return Placeholder
		}
		return strconv.FormatBool(*f.Boolean)
	case "date":
		return date(f.Date)
	default:
		return Placeholder
	}
}
