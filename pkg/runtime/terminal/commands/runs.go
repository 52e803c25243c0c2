package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/store-briefing/pkg/runtime/terminal/export"
)

type RunsCmd struct {
	unit   string
	limit  int
	env    Environment
	report *export.Reporter
}

func NewRunsCmd(env Environment, reporter *export.Reporter) *cobra.Command {
	rc := &RunsCmd{env: env, report: reporter}
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show the run ledger",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.unit, "unit", "", "Only show runs of this unit")
	cmd.Flags().IntVar(&rc.limit, "limit", 20, "Maximum number of runs to show")

	return cmd
}

func (rc *RunsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	app, err := rc.env.History(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close run ledger")
		}
	}()

	var units []string
	if rc.unit != "" {
		units = []string{rc.unit}
	}
	outcomes, err := app.Ledger.History(ctx, units, rc.limit)
	if err != nil {
		return err
	}
	return rc.report.HandleHistory(outcomes)
}
