package workflow

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/dispatch"
)

// Dispatcher delivers the units due at a given instant.
type Dispatcher interface {
	RunAll(ctx context.Context, now time.Time) domain.RunReport
}

// Runner fires the dispatcher once per schedule hour until its context is cancelled.
type Runner struct {
	dispatcher Dispatcher
	done       chan struct{}
	progress   chan domain.RunReport
	config     RunnerConfig
}

type RunnerConfig struct {
	// Offset delays each dispatch past the top of the hour.
	Offset time.Duration
	Clock  func() time.Time
	After  func(time.Duration) <-chan time.Time
}

func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Offset: 30 * time.Second,
		Clock:  time.Now,
		After:  time.After,
	}
}

func NewRunner(dispatcher Dispatcher, config RunnerConfig) *Runner {
	defaults := DefaultRunnerConfig()
	if config.Clock == nil {
		config.Clock = defaults.Clock
	}
	if config.After == nil {
		config.After = defaults.After
	}
	return &Runner{
		dispatcher: dispatcher,
		done:       make(chan struct{}),
		progress:   make(chan domain.RunReport, 24),
		config:     config,
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Progress receives every dispatch report. Reports are dropped when nobody reads them.
func (r *Runner) Progress() <-chan domain.RunReport {
	return r.progress
}

func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Str("component", "scheduler").Logger()
	ctx = logger.WithContext(ctx)
	defer close(r.done)
	defer close(r.progress)

	for {
		wait := untilNextHour(r.config.Clock()) + r.config.Offset
		logger.Debug().Dur("wait", wait).Msg("waiting for next slot")

		select {
		case <-ctx.Done():
			logger.Info().Msg("scheduler stopped")
			return
		case <-r.config.After(wait):
			report := r.dispatcher.RunAll(ctx, r.config.Clock())
			select {
			case r.progress <- report:
			default:
				logger.Warn().Msg("progress buffer full, dropping report")
			}
		}
	}
}

func untilNextHour(now time.Time) time.Duration {
	next := dispatch.SlotStart(now).Add(time.Hour)
	return next.Sub(now)
}
