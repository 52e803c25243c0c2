package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/store-briefing/pkg/models/domain"
	"github.com/de-tools/store-briefing/pkg/runtime/bootstrap"
	"github.com/de-tools/store-briefing/pkg/runtime/terminal/commands"
	"github.com/de-tools/store-briefing/pkg/runtime/terminal/export"
	"github.com/de-tools/store-briefing/pkg/services/config"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd  *cobra.Command
	output   io.Writer
	logs     io.Writer
	settings bootstrap.Settings
	version  string
	clock    func() time.Time

	logLevel string
	pretty   bool
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logs receives log output; defaults to stderr.
	Logs    io.Writer
	Version string
	Clock   func() time.Time

	NotionBaseURL   string
	TelegramBaseURL string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	cli := &CLI{
		output:  opts.Output,
		logs:    opts.Logs,
		version: opts.Version,
		clock:   opts.Clock,
		settings: bootstrap.Settings{
			Output:          opts.Output,
			NotionBaseURL:   opts.NotionBaseURL,
			TelegramBaseURL: opts.TelegramBaseURL,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "briefing",
		Short:             "Daily store briefings from Notion to Telegram",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setupLogger,
	}
	cmd.SetOut(cli.output)

	defaultCredentials := ""
	if home, err := os.UserHomeDir(); err == nil {
		defaultCredentials = filepath.Join(home, ".briefingcfg")
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.settings.Config.ConfigPath, "config", "c", "", "YAML file merged over the built-in unit table")
	flags.StringVar(&cli.settings.Config.CredentialsPath, "credentials", defaultCredentials, "ini file holding API credentials")
	flags.StringVar(&cli.settings.Config.Profile, "profile", config.DefaultProfile, "Credentials profile")
	flags.StringVar(&cli.settings.LedgerPath, "ledger", "", "Run ledger database (overrides the configured one)")
	flags.StringVar(&cli.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&cli.pretty, "pretty", false, "Human readable log output")

	reporter := export.NewReporter(cli.output)

	cmd.AddCommand(commands.NewRunCmd(cli, reporter, cli.clock))
	cmd.AddCommand(commands.NewPreviewCmd(cli, cli.clock))
	cmd.AddCommand(commands.NewScheduleCmd(cli, NewReporter(cli.output)))
	cmd.AddCommand(commands.NewRunsCmd(cli, reporter))
	cmd.AddCommand(commands.NewVersionCmd(cli.version))

	return cmd
}

func (cli *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = cli.logs
	if cli.pretty {
		out = zerolog.ConsoleWriter{Out: cli.logs, TimeFormat: time.Kitchen}
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

func (cli *CLI) Config(ctx context.Context) (domain.Config, error) {
	return config.Load(ctx, cli.settings.Config)
}

func (cli *CLI) App(ctx context.Context, dryRun, noAI bool) (*bootstrap.App, error) {
	s := cli.settings
	s.DryRun = dryRun
	s.NoAI = noAI
	return bootstrap.New(ctx, s)
}

func (cli *CLI) History(ctx context.Context) (*bootstrap.App, error) {
	return bootstrap.OpenHistory(ctx, cli.settings)
}
