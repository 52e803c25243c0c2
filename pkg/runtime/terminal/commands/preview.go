package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/store-briefing/pkg/services/dispatch"
)

type PreviewCmd struct {
	unit  string
	date  string
	noAI  bool
	env   Environment
	clock func() time.Time
}

func NewPreviewCmd(env Environment, clock func() time.Time) *cobra.Command {
	pc := &PreviewCmd{env: env, clock: clock}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a unit's briefing without delivering it",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.unit, "unit", "", "Unit to preview")
	cmd.Flags().StringVar(&pc.date, "date", "", "Day to build the briefing for (YYYY-MM-DD, UTC+9); defaults to today")
	cmd.Flags().BoolVar(&pc.noAI, "no-ai", false, "Skip the AI summary")

	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	now := pc.clock()
	if pc.date != "" {
		day, err := time.ParseInLocation("2006-01-02", pc.date, dispatch.Zone)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", pc.date)
		}
		now = day.Add(12 * time.Hour)
	}

	app, err := pc.env.App(ctx, true, pc.noAI)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close run ledger")
		}
	}()

	unit, ok := app.Config.Unit(pc.unit)
	if !ok {
		return fmt.Errorf("unknown unit %q, configured units: %v", pc.unit, app.Config.UnitNames())
	}

	b, err := app.Runner.Build(ctx, unit, now)
	if err != nil {
		return fmt.Errorf("failed to build briefing: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), b.Text)
	return err
}
