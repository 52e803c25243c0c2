// Package bootstrap wires configuration, clients and the run ledger into a briefing runner.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/services/briefing"
	"github.com/de-tools/store-briefing/pkg/services/config"
	"github.com/de-tools/store-briefing/pkg/services/summary"
	"github.com/de-tools/store-briefing/pkg/store/client"
	"github.com/de-tools/store-briefing/pkg/store/duckdb"
	"github.com/de-tools/store-briefing/pkg/store/duckdb/runs"
)

type Settings struct {
	Config config.Options
	// LedgerPath overrides the configured ledger database.
	LedgerPath string
	// DryRun prints briefings to Output instead of sending them and leaves the ledger alone.
	DryRun bool
	NoAI   bool
	Output io.Writer

	NotionBaseURL   string
	TelegramBaseURL string
}

type App struct {
	Config domain.Config
	Runner *briefing.Runner
	// Ledger is nil when no ledger is configured or on dry runs.
	Ledger *briefing.StoreLedger

	db *sql.DB
}

// New loads the configuration and builds every collaborator the runner needs.
func New(ctx context.Context, s Settings) (*App, error) {
	cfg, err := config.Load(ctx, s.Config)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	if err := app.init(ctx, s); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func (a *App) init(ctx context.Context, s Settings) error {
	logger := zerolog.Ctx(ctx)
	cfg := a.Config

	querier, err := client.NewNotionClient(s.NotionBaseURL, cfg.Credentials.NotionToken, cfg.Timeouts.Query)
	if err != nil {
		return fmt.Errorf("notion: %w", err)
	}

	var deliverer briefing.Deliverer
	if s.DryRun {
		out := s.Output
		if out == nil {
			out = os.Stdout
		}
		deliverer = client.NewWriter(out)
	} else {
		tg, err := client.NewTelegramClient(s.TelegramBaseURL, cfg.Credentials.TelegramToken, cfg.Timeouts.Delivery)
		if err != nil {
			return fmt.Errorf("telegram: %w", err)
		}
		deliverer = tg
	}

	opts := briefing.Options{Config: cfg, Querier: querier, Deliverer: deliverer}

	if !s.NoAI {
		gemini, err := summary.NewGemini(ctx, cfg.Credentials.GeminiKey, cfg.Model)
		if err != nil {
			return err
		}
		if gemini != nil {
			opts.Summarizer = gemini
		} else {
			logger.Info().Msg("no Gemini API key, AI summary disabled")
		}
	}

	if !s.DryRun {
		ledger, err := a.openLedger(s.LedgerPath)
		if err != nil {
			return err
		}
		if ledger != nil {
			a.Ledger = ledger
			opts.Ledger = ledger
		}
	}

	a.Runner, err = briefing.NewRunner(opts)
	return err
}

func (a *App) openLedger(override string) (*briefing.StoreLedger, error) {
	path := override
	if path == "" {
		path = a.Config.Ledger
	}
	if path == "" {
		return nil, nil
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: path})
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger %s: %w", path, err)
	}
	a.db = db

	store, err := runs.NewStore(db)
	if err != nil {
		return nil, err
	}
	return briefing.NewLedger(store), nil
}

// OpenHistory opens only the run ledger of the loaded configuration.
func OpenHistory(ctx context.Context, s Settings) (*App, error) {
	cfg, err := config.Load(ctx, s.Config)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg}
	ledger, err := app.openLedger(s.LedgerPath)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("no run ledger configured")
	}
	app.Ledger = ledger
	return app, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
