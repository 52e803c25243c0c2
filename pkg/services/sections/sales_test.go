package sections

import (
	"testing"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesRecord(dates, actual, expected *domain.PropertyCell) domain.Record {
	return record("sales-1", map[string]*domain.PropertyCell{
		"매출 일치율": number(97.3),
		"실제 날짜":  dates,
		"실제 매출액": actual,
		"예상 매출액": expected,
	})
}

func TestBuildSales(t *testing.T) {
	w := domain.TrailingWeek(today)

	t.Run("no data", func(t *testing.T) {
		s := BuildSales(nil, w)
		assert.Equal(t, []string{"- 매출 데이터 없음"}, s.Lines)
	})

	t.Run("window filtering keeps index order", func(t *testing.T) {
		r := salesRecord(
			rollup(date("2025-03-13"), date("2025-02-01"), date("2025-03-10"), date("2025-03-20")),
			rollup(richText("₩1,500,000"), richText("9,999,999"), richText("800,000"), richText("1")),
			rollup(number(1200000), number(1), number(1000000), number(1)),
		)

		s := BuildSales([]domain.Record{r}, w)
		assert.Equal(t, []string{
			"총합: 97.3%",
			"• 03/13 | 실 1,500,000 ↔ 예 1,200,000 (🔺+300,000)",
			"• 03/10 | 실 800,000 ↔ 예 1,000,000 (🔻-200,000)",
		}, s.Lines)
	})

	t.Run("zero difference is not positive", func(t *testing.T) {
		r := salesRecord(rollup(date("2025-03-12")), rollup(number(500)), rollup(number(500)))
		s := BuildSales([]domain.Record{r}, w)
		assert.Equal(t, "• 03/12 | 실 500 ↔ 예 500 (🔻0)", s.Lines[1])
	})

	t.Run("nothing in window", func(t *testing.T) {
		r := salesRecord(rollup(date("2024-12-01")), rollup(number(1)), rollup(number(1)))
		s := BuildSales([]domain.Record{r}, w)
		assert.Equal(t, []string{"총합: 97.3%", "- 최근 7일 매출 내역 없음"}, s.Lines)
	})
}

func TestSalesRows_MismatchedLengths(t *testing.T) {
	w := domain.TrailingWeek(today)
	series := domain.ParallelSeries{
		Dates:    []string{"2025-03-10", "2025-03-11", "2025-03-12"},
		Actual:   []string{"100", "없음"},
		Expected: []string{"90", "200", "300", "400"},
	}

	rows := SalesRows(series, w)
	require.Len(t, rows, 3)

	assert.Equal(t, SalesRow{Date: "2025-03-10", Actual: 100, Expected: 90, HasActual: true, HasExpected: true}, rows[0])
	// present but without digits parses as zero
	assert.Equal(t, SalesRow{Date: "2025-03-11", Actual: 0, Expected: 200, HasActual: true, HasExpected: true}, rows[1])
	// actual series ran out: absent, not zero
	assert.Equal(t, SalesRow{Date: "2025-03-12", Expected: 300, HasExpected: true}, rows[2])
	assert.False(t, rows[2].Comparable())

	assert.Equal(t, "• 03/12 | 실 - ↔ 예 300 (비교 불가)", formatSalesRow(rows[2]))
}

func TestSalesQuery(t *testing.T) {
	q := salesQuery("db-sales", domain.TrailingWeek(today))
	assert.Equal(t, domain.Query{DatabaseID: "db-sales", PageSize: 1}, q)
}
