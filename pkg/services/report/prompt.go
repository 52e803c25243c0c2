package report

import "fmt"

const summaryPrompt = `너는 다수의 F&B 매장을 운영하는 20대 후반 점장이야.
아래 일일 브리핑 데이터를 보고, 오늘 아침 회의에서 직원들과 당장 짚어야 할 '핵심 피드백 및 액션 플랜'을 정확히 5가지만 뽑아줘.

[분석 기준]
1. 종합평가 데이터는 아예 제외할 것.
2. 손익(인건비/원가 비중 등)과 실/예상 매출 차액에서 튀는 지표가 있다면 날카롭게 지적할 것.
3. 최근 이슈 중 오늘 당장 처리해야 하거나(예: 발주 누락, 시설 보수), 전 직원이 숙지해야 할 사항을 우선할 것.

[출력 형식]
- 반드시 '- (내용)' 형태의 개조식으로 딱 5줄만 출력할 것.
- 부연 설명이나 인사말 절대 금지.
- 오글거리지 않고, 짧고 직관적인 실무자 말투를 사용할 것.
(말투 예시: "- 인건비 비율 25%% 초과. 파트타임 스케줄 효율화 방안 논의 필요")

%s`

// Prompt wraps an assembled document in the meeting-summary instructions.
func Prompt(document string) string {
	return fmt.Sprintf(summaryPrompt, document)
}
