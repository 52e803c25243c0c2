package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/de-tools/store-briefing/pkg/models/domain"
)

// DefaultProfile is the section ini files use for keys outside any section.
const DefaultProfile = "DEFAULT"

// CredentialsRegistry reads API credentials from an ini file with one section per profile:
//
//	[DEFAULT]
//	notion_token   = secret_...
//	telegram_token = 123:abc
//	gemini_api_key = AIza...
type CredentialsRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (domain.Credentials, error)
}

type credentialsRegistry struct {
	cfg *ini.File
}

// NewCredentialsRegistry loads path. A missing file yields an empty registry.
func NewCredentialsRegistry(path string) (CredentialsRegistry, error) {
	if path == "" {
		return &credentialsRegistry{cfg: ini.Empty()}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &credentialsRegistry{cfg: ini.Empty()}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials file %s: %w", path, err)
	}
	return &credentialsRegistry{cfg: cfg}, nil
}

func (cr *credentialsRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *credentialsRegistry) GetCredentials(_ context.Context, profile string) (domain.Credentials, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		if profile == DefaultProfile {
			return domain.Credentials{}, nil
		}
		return domain.Credentials{}, fmt.Errorf("profile %s not found", profile)
	}

	return domain.Credentials{
		NotionToken:   section.Key("notion_token").String(),
		TelegramToken: section.Key("telegram_token").String(),
		GeminiKey:     section.Key("gemini_api_key").String(),
	}, nil
}
