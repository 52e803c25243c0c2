package sections

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/extract"
)

const (
	salesMatchRate = "매출 일치율"
	salesDates     = "실제 날짜"
	salesActual    = "실제 매출액"
	salesExpected  = "예상 매출액"
)

var amounts = message.NewPrinter(language.Korean)

func salesQuery(databaseID string, _ domain.DateWindow) domain.Query {
	return domain.Query{DatabaseID: databaseID, PageSize: 1}
}

// SalesRow is one in-window day of the actual-versus-expected series.
type SalesRow struct {
	Date     string
	Actual   int64
	Expected int64
	// HasActual and HasExpected are false when the series ran out before this index.
	HasActual   bool
	HasExpected bool
}

func (r SalesRow) Comparable() bool {
	return r.HasActual && r.HasExpected
}

func (r SalesRow) Diff() int64 {
	return r.Actual - r.Expected
}

// SalesRows walks the series in index order and keeps the indices whose date falls in w.
// An index without a date cannot be placed in time and is dropped.
func SalesRows(s domain.ParallelSeries, w domain.DateWindow) []SalesRow {
	var rows []SalesRow
	for i := 0; i < s.Len(); i++ {
		date, ok := s.Date(i)
		if !ok || !w.ContainsDate(date) {
			continue
		}

		row := SalesRow{Date: date[:10]}
		if v, ok := s.ActualAt(i); ok {
			row.Actual, row.HasActual = extract.Digits(v), true
		}
		if v, ok := s.ExpectedAt(i); ok {
			row.Expected, row.HasExpected = extract.Digits(v), true
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildSales renders the match rate and the daily actual-versus-expected lines of the
// first record returned.
func BuildSales(records []domain.Record, w domain.DateWindow) domain.Section {
	s := domain.Section{Dataset: domain.DatasetSales, Title: "3. 주간 매출 일치율", Emoji: "📈"}
	if len(records) == 0 {
		s.Lines = []string{"- 매출 데이터 없음"}
		return s
	}

	r := records[0]
	s.Lines = []string{fmt.Sprintf("총합: %s%%", text(r.Property(salesMatchRate)))}

	rows := SalesRows(extract.Project(r, salesDates, salesActual, salesExpected), w)
	if len(rows) == 0 {
		s.Lines = append(s.Lines, "- 최근 7일 매출 내역 없음")
		return s
	}
	for _, row := range rows {
		s.Lines = append(s.Lines, formatSalesRow(row))
	}
	return s
}

func formatSalesRow(row SalesRow) string {
	day := strings.ReplaceAll(row.Date[5:], "-", "/")
	return fmt.Sprintf("• %s | 실 %s ↔ 예 %s (%s)",
		html.EscapeString(day),
		amount(row.Actual, row.HasActual),
		amount(row.Expected, row.HasExpected),
		diff(row))
}

func amount(v int64, ok bool) string {
	if !ok {
		return extract.Placeholder
	}
	return amounts.Sprintf("%d", v)
}

func diff(row SalesRow) string {
	if !row.Comparable() {
		return "비교 불가"
	}
	d := row.Diff()
	if d > 0 {
		return "🔺+" + amounts.Sprintf("%d", d)
	}
	return "🔻" + amounts.Sprintf("%d", d)
}
