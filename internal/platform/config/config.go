package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Organization selection modes. Slug-routed deployments resolve tenants
// from the request path; single-tenant deployments trust configuration.
const (
	OrgModeSlug   = "slug"
	OrgModeSingle = "single"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"campus"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	OrgMode       string `env:"CAMPUS_ORG_MODE" envDefault:"slug"`
	SingleOrgSlug string `env:"CAMPUS_SINGLE_ORG_SLUG"`
	SingleOrgID   string `env:"CAMPUS_SINGLE_ORG_ID"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.OrgMode != OrgModeSlug && cfg.OrgMode != OrgModeSingle {
		return Config{}, fmt.Errorf("CAMPUS_ORG_MODE must be %q or %q, got %q", OrgModeSlug, OrgModeSingle, cfg.OrgMode)
	}
	return cfg, nil
}
