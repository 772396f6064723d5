package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	access "campus/contexts/identity-access/access-service"
	postgresadapter "campus/contexts/identity-access/access-service/adapters/postgres"
	"campus/internal/platform/authn"
	"campus/internal/platform/config"
	"campus/internal/platform/db"
	"campus/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	sessionCfg, err := authn.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	identity, err := authn.NewVerifier(sessionCfg, logger)
	if err != nil {
		return nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo, err := postgresadapter.NewRepository(pg.DB, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	accessModule := access.NewModule(access.Dependencies{
		Identity:      identity,
		Memberships:   repo,
		Clock:         postgresadapter.SystemClock{},
		IDGenerator:   postgresadapter.UUIDGenerator{},
		SingleOrgID:   singleOrgID(cfg),
		SingleOrgSlug: singleOrgSlug(cfg),
		Logger:        logger,
	})

	server := httpserver.New(accessModule, logger, cfg.HTTPAddr)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

// Single-org identifiers are only honored in single-tenant mode so a
// leftover env value cannot silently change slug-routed deployments.
func singleOrgID(cfg config.Config) string {
	if cfg.OrgMode != config.OrgModeSingle {
		return ""
	}
	return cfg.SingleOrgID
}

func singleOrgSlug(cfg config.Config) string {
	if cfg.OrgMode != config.OrgModeSingle {
		return ""
	}
	return cfg.SingleOrgSlug
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}
