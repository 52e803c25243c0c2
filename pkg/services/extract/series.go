package extract

import "github.com/de-tools/store-briefing/pkg/models/domain"

// Series reads a multi-value cell as an ordered list of plain values. A single-valued
// cell yields one element, or none when its value is the placeholder.
func Series(cell *domain.PropertyCell) []string {
	if cell != nil && cell.Kind == domain.CellRollup && cell.Rollup != nil &&
		cell.Rollup.Type == domain.RollupArray && len(cell.Rollup.Array) > 0 {
		values := make([]string, 0, len(cell.Rollup.Array))
		for _, item := range cell.Rollup.Array {
			values = append(values, Value(item))
		}
		return values
	}

	v := Value(cell)
	if v == Placeholder {
		return []string{}
	}
	return []string{v}
}

// Project extracts the three date-aligned sequences from one record.
func Project(r domain.Record, dates, actual, expected string) domain.ParallelSeries {
	return domain.ParallelSeries{
		Dates:    Series(r.Property(dates)),
		Actual:   Series(r.Property(actual)),
		Expected: Series(r.Property(expected)),
	}
}
