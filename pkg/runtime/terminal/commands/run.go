package commands

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/runtime/terminal/export"
)

type RunCmd struct {
	unit   string
	dryRun bool
	noAI   bool
	env    Environment
	report *export.Reporter
	clock  func() time.Time
}

func NewRunCmd(env Environment, reporter *export.Reporter, clock func() time.Time) *cobra.Command {
	rc := &RunCmd{env: env, report: reporter, clock: clock}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Deliver the briefings of every unit due this hour",
		Long: "Run is meant to be triggered hourly. It delivers the units whose schedule slot matches the\n" +
			"current weekday and hour in UTC+9. Failed units are reported but never fail the command.",
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().StringVar(&rc.unit, "unit", "", "Deliver this unit now, ignoring the schedule")
	cmd.Flags().BoolVar(&rc.dryRun, "dry-run", false, "Print briefings instead of sending them")
	cmd.Flags().BoolVar(&rc.noAI, "no-ai", false, "Skip the AI summary")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	app, err := rc.env.App(ctx, rc.dryRun, rc.noAI)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close run ledger")
		}
	}()

	now := rc.clock()
	if rc.unit == "" {
		return rc.report.Handle(app.Runner.RunAll(ctx, now))
	}

	outcome, err := app.Runner.RunUnit(ctx, rc.unit, now)
	if err != nil {
		return err
	}

	weekday, hour := domain.WeekdayOf(outcome.Slot), outcome.Slot.Hour()
	return rc.report.Handle(domain.RunReport{Weekday: weekday, Hour: hour, Outcomes: []domain.Outcome{outcome}})
}
