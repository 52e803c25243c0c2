package commands

import (
	"context"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/runtime/bootstrap"
)

// Environment builds the application for one command invocation from the global flags.
type Environment interface {
	Config(ctx context.Context) (domain.Config, error)
	App(ctx context.Context, dryRun, noAI bool) (*bootstrap.App, error)
	History(ctx context.Context) (*bootstrap.App, error)
}
