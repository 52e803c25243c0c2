package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	handlers "github.com/de-tools/store-briefing/pkg/handlers/briefing"
	"github.com/de-tools/store-briefing/pkg/runtime/bootstrap"
	"github.com/de-tools/store-briefing/pkg/server"
	"github.com/de-tools/store-briefing/pkg/services/config"
	"github.com/de-tools/store-briefing/pkg/services/workflow"
)

var (
	settings bootstrap.Settings
	schedule bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for store briefings",
		RunE:  runServer,
	}

	defaultCredentials := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultCredentials = filepath.Join(home, ".briefingcfg")
	}

	rootCmd.Flags().StringVarP(&settings.Config.ConfigPath, "config", "c", "",
		"YAML file merged over the built-in unit table")
	rootCmd.Flags().StringVar(&settings.Config.CredentialsPath, "credentials", defaultCredentials,
		"ini file holding API credentials (default is $HOME/.briefingcfg)")
	rootCmd.Flags().StringVar(&settings.Config.Profile, "profile", config.DefaultProfile, "Credentials profile")
	rootCmd.Flags().StringVar(&settings.LedgerPath, "ledger", "", "Run ledger database (overrides the configured one)")
	rootCmd.Flags().BoolVar(&schedule, "schedule", false, "Dispatch due units every hour from within the server")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	app, err := bootstrap.New(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to initialize briefing runner: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close run ledger")
		}
	}()

	logger.Info().Strs("units", app.Config.UnitNames()).Int("slots", len(app.Config.Schedule)).
		Msg("configuration loaded")

	deps := server.Dependencies{
		Config:   app.Config,
		Briefing: app.Runner,
		Clock:    time.Now,
	}
	// a nil *StoreLedger must not become a non-nil interface
	if app.Ledger != nil {
		deps.History = handlers.History(app.Ledger)
	}

	if schedule {
		scheduler := workflow.NewController(app.Runner, workflow.DefaultRunnerConfig())
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		go workflow.LogReports(ctx, scheduler.Progress())
		defer func() {
			if err := scheduler.Cancel(ctx); err != nil {
				logger.Warn().Err(err).Msg("failed to stop scheduler")
			}
		}()
		logger.Info().Msg("hourly scheduler started")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		return fmt.Errorf("missing server configuration: SERVER_HOST and SERVER_PORT must be set")
	}

	addr := net.JoinHostPort(host, port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies:    deps,
	})
	return api.Start()
}
