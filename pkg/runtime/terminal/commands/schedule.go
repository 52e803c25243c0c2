package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

type ScheduleReporter interface {
	Handle(cfg domain.Config) error
}

func NewScheduleCmd(env Environment, reporter ScheduleReporter) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "List the configured units and their delivery slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := env.Config(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.Handle(cfg)
		},
	}
}
