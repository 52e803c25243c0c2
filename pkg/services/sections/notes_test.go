package sections

import (
	"testing"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

const (
	bullet    = "\u3164\u3164\u25aa\ufe0f "
	subBullet = "\u3164\u3164\u3164\u3164\u2514 "
)

func TestBuildEval(t *testing.T) {
	w := domain.TrailingWeek(today)

	assert.Equal(t, []string{"- 데이터 없음"}, BuildEval(nil, w).Lines)

	r := record("eval-1", map[string]*domain.PropertyCell{"View": richText("  전반적으로 양호 <A등급>\n")})
	assert.Equal(t, []string{"전반적으로 양호 &lt;A등급&gt;"}, BuildEval([]domain.Record{r}, w).Lines)
}

func TestBuildIssues(t *testing.T) {
	w := domain.TrailingWeek(today)

	t.Run("no data", func(t *testing.T) {
		assert.Equal(t, []string{"- 이슈 없음"}, BuildIssues(nil, w).Lines)
	})

	t.Run("numbered with detail lines", func(t *testing.T) {
		records := []domain.Record{
			record("i1", map[string]*domain.PropertyCell{
				"Log": title("3/10 주방"),
				"이슈":  richText("- 냉장고 온도 이상\n\n   \n1. 발주 누락\n1-1. 우유"),
			}),
			record("i2", map[string]*domain.PropertyCell{
				"Log": title("3/12 홀"),
			}),
		}

		s := BuildIssues(records, w)
		assert.Equal(t, "5. 주간 이슈", s.Title)
		assert.Equal(t, []string{
			"1. <b>3/10 주방</b>",
			bullet + "냉장고 온도 이상",
			bullet + "발주 누락",
			subBullet + "우유",
			"2. <b>3/12 홀</b>",
		}, s.Lines)
	})
}

func TestBuildMeeting(t *testing.T) {
	w := domain.TrailingWeek(today)

	t.Run("no data", func(t *testing.T) {
		assert.Equal(t, []string{"- 회의록 없음"}, BuildMeeting(nil, w).Lines)
	})

	t.Run("latest note", func(t *testing.T) {
		r := record("m1", map[string]*domain.PropertyCell{
			"입력 날짜": date("2025-03-11"),
			"Log":   title("주간 회의"),
			"내용":    richText("* 신메뉴 시식\n- 청소 당번 & 교대"),
		})

		s := BuildMeeting([]domain.Record{r}, w)
		assert.Equal(t, []string{
			"<b>[2025-03-11] 주간 회의</b>",
			bullet + "신메뉴 시식",
			bullet + "청소 당번 &amp; 교대",
		}, s.Lines)
	})
}

func TestDefinitions_Order(t *testing.T) {
	var got []domain.Dataset
	for _, d := range Definitions() {
		got = append(got, d.Dataset)
		assert.NotNil(t, d.Query)
		assert.NotNil(t, d.Build)
		assert.Equal(t, d.Dataset, d.Build(nil, d.Window(today)).Dataset)
	}
	assert.Equal(t, domain.Datasets, got)
}
