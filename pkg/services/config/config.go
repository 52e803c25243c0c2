// Package config builds the immutable runtime configuration: units, schedule, credentials
// and timeouts.
package config

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

//go:embed default_config.yaml
var defaultConfig []byte

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	defaultTimeout = 30 * time.Second
	envPrefix      = "BRIEFING"
)

type Options struct {
	// ConfigPath is merged over the embedded defaults when set.
	ConfigPath string
	// CredentialsPath points at an ini credentials file; missing files are ignored.
	CredentialsPath string
	Profile         string
}

type fileConfig struct {
	Model       string      `mapstructure:"model"`
	ParseMode   string      `mapstructure:"parse_mode"`
	Ledger      string      `mapstructure:"ledger"`
	Units       []unitEntry `mapstructure:"units"`
	Schedule    []slotEntry `mapstructure:"schedule"`
	Credentials struct {
		NotionToken   string `mapstructure:"notion_token"`
		TelegramToken string `mapstructure:"telegram_token"`
		GeminiKey     string `mapstructure:"gemini_api_key"`
	} `mapstructure:"credentials"`
	Timeouts struct {
		Query     time.Duration `mapstructure:"query"`
		Delivery  time.Duration `mapstructure:"delivery"`
		Summarize time.Duration `mapstructure:"summarize"`
	} `mapstructure:"timeouts"`
}

type unitEntry struct {
	Name     string            `mapstructure:"name"`
	ChatID   string            `mapstructure:"chat_id"`
	Datasets map[string]string `mapstructure:"datasets"`
}

type slotEntry struct {
	Weekday int    `mapstructure:"weekday"`
	Hour    int    `mapstructure:"hour"`
	Unit    string `mapstructure:"unit"`
}

// Load reads the embedded defaults, the optional config file, the environment and the
// credentials file, in increasing order of precedence for everything but credentials,
// where the environment wins over the file and the ini profile fills remaining gaps.
func Load(ctx context.Context, opts Options) (domain.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return domain.Config{}, fmt.Errorf("parsing embedded config: %w", err)
	}

	if opts.ConfigPath != "" {
		v.SetConfigFile(opts.ConfigPath)
		if err := v.MergeInConfig(); err != nil {
			return domain.Config{}, fmt.Errorf("reading config %s: %w", opts.ConfigPath, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"credentials.notion_token":   "NOTION_KEY",
		"credentials.telegram_token": "BOT_TOKEN",
		"credentials.gemini_api_key": "GEMINI_API_KEY",
	} {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return domain.Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var raw fileConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg := toDomain(raw)

	registry, err := NewCredentialsRegistry(opts.CredentialsPath)
	if err != nil {
		return domain.Config{}, err
	}
	fromFile, err := registry.GetCredentials(ctx, opts.Profile)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.Credentials = mergeCredentials(cfg.Credentials, fromFile)

	if err := Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func toDomain(raw fileConfig) domain.Config {
	cfg := domain.Config{
		Model:     raw.Model,
		ParseMode: raw.ParseMode,
		Ledger:    raw.Ledger,
		Credentials: domain.Credentials{
			NotionToken:   raw.Credentials.NotionToken,
			TelegramToken: raw.Credentials.TelegramToken,
			GeminiKey:     raw.Credentials.GeminiKey,
		},
		Timeouts: domain.Timeouts{
			Query:     orDefault(raw.Timeouts.Query),
			Delivery:  orDefault(raw.Timeouts.Delivery),
			Summarize: orDefault(raw.Timeouts.Summarize),
		},
	}

	for _, u := range raw.Units {
		datasets := make(map[domain.Dataset]string, len(u.Datasets))
		for k, id := range u.Datasets {
			datasets[domain.Dataset(strings.ToLower(k))] = id
		}
		cfg.Units = append(cfg.Units, domain.UnitConfig{Name: u.Name, ChatID: u.ChatID, Datasets: datasets})
	}
	for _, s := range raw.Schedule {
		cfg.Schedule = append(cfg.Schedule, domain.Slot{Weekday: domain.Weekday(s.Weekday), Hour: s.Hour, Unit: s.Unit})
	}
	return cfg
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}

func mergeCredentials(primary, fallback domain.Credentials) domain.Credentials {
	if primary.NotionToken == "" {
		primary.NotionToken = fallback.NotionToken
	}
	if primary.TelegramToken == "" {
		primary.TelegramToken = fallback.TelegramToken
	}
	if primary.GeminiKey == "" {
		primary.GeminiKey = fallback.GeminiKey
	}
	return primary
}

// Validate checks the unit table and schedule. Credentials are checked by the commands
// that need them.
func Validate(cfg domain.Config) error {
	if len(cfg.Units) == 0 {
		return fmt.Errorf("%w: no units configured", ErrInvalidConfig)
	}

	names := make(map[string]bool, len(cfg.Units))
	for i, u := range cfg.Units {
		if u.Name == "" {
			return fmt.Errorf("%w: unit %d: name is required", ErrInvalidConfig, i)
		}
		if names[u.Name] {
			return fmt.Errorf("%w: unit %q is defined twice", ErrInvalidConfig, u.Name)
		}
		names[u.Name] = true
		if u.ChatID == "" {
			return fmt.Errorf("%w: unit %q: chat_id is required", ErrInvalidConfig, u.Name)
		}
		for _, ds := range domain.Datasets {
			if _, err := u.DatabaseID(ds); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
		}
	}

	for i, s := range cfg.Schedule {
		if s.Weekday < 0 || s.Weekday > 6 {
			return fmt.Errorf("%w: schedule %d: weekday must be 0-6, got %d", ErrInvalidConfig, i, s.Weekday)
		}
		if s.Hour < 0 || s.Hour > 23 {
			return fmt.Errorf("%w: schedule %d: hour must be 0-23, got %d", ErrInvalidConfig, i, s.Hour)
		}
		if !names[s.Unit] {
			return fmt.Errorf("%w: schedule %d: unknown unit %q", ErrInvalidConfig, i, s.Unit)
		}
	}
	return nil
}
