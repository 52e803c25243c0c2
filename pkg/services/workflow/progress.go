package workflow

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

// LogReports logs every dispatch report until progress is closed.
func LogReports(ctx context.Context, progress <-chan domain.RunReport) {
	logger := zerolog.Ctx(ctx)
	for report := range progress {
		logger.Info().
			Str("weekday", report.Weekday.String()).
			Int("hour", report.Hour).
			Int("delivered", report.Count(domain.OutcomeDelivered)).
			Int("failed", report.Count(domain.OutcomeFailed)).
			Int("skipped", report.Count(domain.OutcomeSkipped)).
			Msg("scheduled dispatch")
	}
}
