package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"NOTION_KEY", "BOT_TOKEN", "GEMINI_API_KEY",
		"BRIEFING_CREDENTIALS_NOTION_TOKEN", "BRIEFING_CREDENTIALS_TELEGRAM_TOKEN", "BRIEFING_CREDENTIALS_GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"행궁 테네스", "신동 테네스", "심금", "팔달맥주"}, cfg.UnitNames())
	assert.Len(t, cfg.Schedule, 4)
	assert.Equal(t, domain.Slot{Weekday: 4, Hour: 12, Unit: "행궁 테네스"}, cfg.Schedule[1])
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "HTML", cfg.ParseMode)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Query)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.Summarize)

	unit, ok := cfg.Unit("심금")
	require.True(t, ok)
	assert.Equal(t, "-5162270715", unit.ChatID)
	id, err := unit.DatabaseID(domain.DatasetMeeting)
	require.NoError(t, err)
	assert.Equal(t, "2edef865970a81398a8ec4e39df28726", id)
}

func TestLoad_FileOverridesUnits(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "briefing.yaml", `units:
  - name: test
    chat_id: "-1"
    datasets: {pnl: a, survey: b, sales: c, eval: d, issue: e, meeting: f}
schedule:
  - {weekday: 0, hour: 9, unit: test}
timeouts:
  query: 5s
`)

	cfg, err := Load(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"test"}, cfg.UnitNames())
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Query)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Delivery)
}

func TestLoad_CredentialsPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("NOTION_KEY", "env-notion")

	creds := writeFile(t, "briefingcfg", `[DEFAULT]
notion_token = file-notion
telegram_token = file-bot

[staging]
telegram_token = staging-bot
`)

	cfg, err := Load(context.Background(), Options{CredentialsPath: creds})
	require.NoError(t, err)
	assert.Equal(t, "env-notion", cfg.Credentials.NotionToken)
	assert.Equal(t, "file-bot", cfg.Credentials.TelegramToken)
	assert.Empty(t, cfg.Credentials.GeminiKey)

	cfg, err = Load(context.Background(), Options{CredentialsPath: creds, Profile: "staging"})
	require.NoError(t, err)
	assert.Equal(t, "staging-bot", cfg.Credentials.TelegramToken)

	_, err = Load(context.Background(), Options{CredentialsPath: creds, Profile: "prod"})
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "bad.yaml", "units: [: bad")

	_, err := Load(context.Background(), Options{ConfigPath: path})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() domain.Config {
		return domain.Config{
			Units: []domain.UnitConfig{{
				Name:   "a",
				ChatID: "-1",
				Datasets: map[domain.Dataset]string{
					"pnl": "1", "survey": "2", "sales": "3", "eval": "4", "issue": "5", "meeting": "6",
				},
			}},
			Schedule: []domain.Slot{{Weekday: 6, Hour: 23, Unit: "a"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*domain.Config)
	}{
		{"no units", func(c *domain.Config) { c.Units = nil }},
		{"missing name", func(c *domain.Config) { c.Units[0].Name = "" }},
		{"duplicate unit", func(c *domain.Config) { c.Units = append(c.Units, c.Units[0]) }},
		{"missing chat", func(c *domain.Config) { c.Units[0].ChatID = "" }},
		{"missing dataset", func(c *domain.Config) { delete(c.Units[0].Datasets, domain.DatasetEval) }},
		{"bad weekday", func(c *domain.Config) { c.Schedule[0].Weekday = 7 }},
		{"bad hour", func(c *domain.Config) { c.Schedule[0].Hour = 24 }},
		{"unknown unit", func(c *domain.Config) { c.Schedule[0].Unit = "b" }},
	}

	require.NoError(t, Validate(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorIs(t, Validate(cfg), ErrInvalidConfig)
		})
	}
}

func TestCredentialsRegistry_Profiles(t *testing.T) {
	path := writeFile(t, "briefingcfg", `[a]
notion_token = x

[empty]
`)
	reg, err := NewCredentialsRegistry(path)
	require.NoError(t, err)

	profiles, err := reg.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, profiles)

	missing, err := NewCredentialsRegistry(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	creds, err := missing.GetCredentials(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{}, creds)
}

func TestCredentialsRegistry_DefaultProfile(t *testing.T) {
	path := writeFile(t, "briefingcfg", `notion_token = top-level
telegram_token = bot

[other]
notion_token = other
`)
	reg, err := NewCredentialsRegistry(path)
	require.NoError(t, err)

	creds, err := reg.GetCredentials(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{NotionToken: "top-level", TelegramToken: "bot"}, creds)

	named, err := reg.GetCredentials(context.Background(), DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, creds, named)
}
