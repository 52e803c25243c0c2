// Package briefing runs the query, build, summarize and deliver pipeline for business units.
package briefing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/dispatch"
	"github.com/de-tools/store-briefing/pkg/services/report"
	"github.com/de-tools/store-briefing/pkg/services/sections"
)

var ErrUnknownUnit = errors.New("unknown unit")

type RecordQuerier interface {
	Query(ctx context.Context, q domain.Query) ([]domain.Record, error)
}

type Deliverer interface {
	Deliver(ctx context.Context, chatID, text, parseMode string) error
}

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Ledger remembers which slots were already delivered.
type Ledger interface {
	Delivered(ctx context.Context, unit string, slot time.Time) (bool, error)
	Record(ctx context.Context, outcome domain.Outcome) error
}

type Options struct {
	Config    domain.Config
	Querier   RecordQuerier
	Deliverer Deliverer
	// Summarizer and Ledger are optional.
	Summarizer Summarizer
	Ledger     Ledger
	Clock      func() time.Time
}

type Runner struct {
	cfg        domain.Config
	querier    RecordQuerier
	deliverer  Deliverer
	summarizer Summarizer
	ledger     Ledger
	clock      func() time.Time
}

func NewRunner(opts Options) (*Runner, error) {
	if opts.Querier == nil {
		return nil, fmt.Errorf("record querier is required")
	}
	if opts.Deliverer == nil {
		return nil, fmt.Errorf("deliverer is required")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Runner{
		cfg:        opts.Config,
		querier:    opts.Querier,
		deliverer:  opts.Deliverer,
		summarizer: opts.Summarizer,
		ledger:     opts.Ledger,
		clock:      opts.Clock,
	}, nil
}

// Build queries every dataset of unit concurrently and assembles the briefing for the
// calendar day of now in the schedule zone. Any query failure fails the whole build.
func (r *Runner) Build(ctx context.Context, unit domain.UnitConfig, now time.Time) (*domain.Briefing, error) {
	today := now.In(dispatch.Zone)
	defs := sections.Definitions()
	built := make([]domain.Section, len(defs))

	databaseIDs := make([]string, len(defs))
	for i, def := range defs {
		id, err := unit.DatabaseID(def.Dataset)
		if err != nil {
			return nil, err
		}
		databaseIDs[i] = id
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(defs))
	for i, def := range defs {
		window := def.Window(today)
		query := def.Query(databaseIDs[i], window)

		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("build %s: panic: %v", def.Dataset, p)
				}
			}()
			qctx, cancel := context.WithTimeout(gctx, r.timeout(r.cfg.Timeouts.Query))
			defer cancel()

			records, err := r.querier.Query(qctx, query)
			if err != nil {
				return fmt.Errorf("query %s: %w", def.Dataset, err)
			}
			built[i] = def.Build(records, window)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	text, err := report.Assemble(unit, today, built, "")
	if err != nil {
		return nil, err
	}

	b := &domain.Briefing{Unit: unit, GeneratedAt: today, Sections: built, Text: text}
	if summary := r.summarize(ctx, text); summary != "" {
		withSummary, err := report.Assemble(unit, today, built, summary)
		if err != nil {
			return nil, err
		}
		b.AISummary = summary
		b.Text = withSummary
	}
	return b, nil
}

// summarize never fails the briefing; an error only drops the summary block.
func (r *Runner) summarize(ctx context.Context, document string) string {
	if r.summarizer == nil {
		return ""
	}
	sctx, cancel := context.WithTimeout(ctx, r.timeout(r.cfg.Timeouts.Summarize))
	defer cancel()

	summary, err := r.summarizer.Summarize(sctx, report.Prompt(document))
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("summary unavailable")
		return ""
	}
	return summary
}

// Run builds and delivers the briefing of one unit. A unit already delivered in the slot
// of now is skipped.
func (r *Runner) Run(ctx context.Context, unit domain.UnitConfig, now time.Time) domain.Outcome {
	return r.run(ctx, unit, now, true)
}

// RunUnit delivers the named unit regardless of the schedule and the ledger.
func (r *Runner) RunUnit(ctx context.Context, name string, now time.Time) (domain.Outcome, error) {
	unit, ok := r.cfg.Unit(name)
	if !ok {
		return domain.Outcome{}, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
	}
	return r.run(ctx, unit, now, false), nil
}

// RunAll delivers every unit scheduled at the weekday and hour of now, one at a time.
// A failing unit never stops the others.
func (r *Runner) RunAll(ctx context.Context, now time.Time) domain.RunReport {
	weekday, hour := dispatch.Now(now)
	logger := zerolog.Ctx(ctx).With().Str("weekday", weekday.String()).Int("hour", hour).Logger()

	targets := dispatch.SelectTargets(weekday, hour, r.cfg.Schedule)
	logger.Info().Strs("units", targets).Msg("dispatching")

	rep := domain.RunReport{Weekday: weekday, Hour: hour, Outcomes: make([]domain.Outcome, 0, len(targets))}
	for _, name := range targets {
		unit, ok := r.cfg.Unit(name)
		if !ok {
			start := r.clock()
			rep.Outcomes = append(rep.Outcomes, domain.Outcome{
				RunID:      uuid.NewString(),
				Unit:       name,
				Slot:       dispatch.SlotStart(now),
				Status:     domain.OutcomeFailed,
				Reason:     ErrUnknownUnit.Error(),
				StartedAt:  start,
				FinishedAt: start,
			})
			continue
		}
		rep.Outcomes = append(rep.Outcomes, r.run(ctx, unit, now, true))
	}

	logger.Info().
		Int("delivered", rep.Count(domain.OutcomeDelivered)).
		Int("failed", rep.Count(domain.OutcomeFailed)).
		Int("skipped", rep.Count(domain.OutcomeSkipped)).
		Msg("dispatch finished")
	return rep
}

func (r *Runner) run(ctx context.Context, unit domain.UnitConfig, now time.Time, checkLedger bool) domain.Outcome {
	outcome := domain.Outcome{
		RunID:     uuid.NewString(),
		Unit:      unit.Name,
		Slot:      dispatch.SlotStart(now),
		StartedAt: r.clock(),
	}
	logger := zerolog.Ctx(ctx).With().Str("unit", unit.Name).Str("run_id", outcome.RunID).Logger()
	ctx = logger.WithContext(ctx)

	r.guardedDeliver(ctx, unit, now, checkLedger, &outcome)
	outcome.FinishedAt = r.clock()

	event := logger.Info()
	if outcome.Failed() {
		event = logger.Error()
	}
	event.Str("status", string(outcome.Status)).Str("reason", outcome.Reason).
		Dur("elapsed", outcome.FinishedAt.Sub(outcome.StartedAt)).Msg("unit finished")

	if r.ledger != nil {
		if err := r.ledger.Record(ctx, outcome); err != nil {
			logger.Warn().Err(err).Msg("failed to record run")
		}
	}
	return outcome
}

// guardedDeliver turns a panic in any collaborator into a failed outcome.
func (r *Runner) guardedDeliver(ctx context.Context, unit domain.UnitConfig, now time.Time, checkLedger bool, outcome *domain.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			outcome.Status = domain.OutcomeFailed
			outcome.Reason = fmt.Sprintf("panic: %v", p)
		}
	}()
	r.deliver(ctx, unit, now, checkLedger, outcome)
}

func (r *Runner) deliver(ctx context.Context, unit domain.UnitConfig, now time.Time, checkLedger bool, outcome *domain.Outcome) {
	if checkLedger && r.ledger != nil {
		delivered, err := r.ledger.Delivered(ctx, unit.Name, outcome.Slot)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("run ledger unavailable")
		} else if delivered {
			outcome.Status = domain.OutcomeSkipped
			outcome.Reason = "already delivered in this slot"
			return
		}
	}

	b, err := r.Build(ctx, unit, now)
	if err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Reason = err.Error()
		return
	}

	dctx, cancel := context.WithTimeout(ctx, r.timeout(r.cfg.Timeouts.Delivery))
	defer cancel()
	if err := r.deliverer.Deliver(dctx, unit.ChatID, b.Text, r.cfg.ParseMode); err != nil {
		outcome.Status = domain.OutcomeFailed
		outcome.Reason = fmt.Sprintf("deliver: %v", err)
		return
	}
	outcome.Status = domain.OutcomeDelivered
}

const defaultTimeout = 30 * time.Second

func (r *Runner) timeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}
