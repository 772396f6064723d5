package access

import (
	"log/slog"

	httpadapter "campus/contexts/identity-access/access-service/adapters/http"
	"campus/contexts/identity-access/access-service/adapters/memory"
	"campus/contexts/identity-access/access-service/application/queries"
	"campus/contexts/identity-access/access-service/ports"
)

// Module is the access-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler

	// PrimaryRole is exposed for in-process collaborators that need the
	// strongest role across organizations without the landing decision.
	PrimaryRole queries.PrimaryRoleUseCase

	Store *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Identity      ports.IdentityProvider
	Memberships   ports.MembershipStore
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	SingleOrgID   string
	SingleOrgSlug string
	Logger        *slog.Logger
}

// NewModule wires the resolution/gating queries and transport handler
// using explicit ports. Adapters are injected per process (or per test);
// nothing here holds module-level singletons.
func NewModule(deps Dependencies) Module {
	resolveOrg := queries.ResolveOrganizationUseCase{
		Identity:    deps.Identity,
		Memberships: deps.Memberships,
		Logger:      deps.Logger,
	}
	resolveSingle := queries.ResolveSingleOrgUseCase{
		Identity:    deps.Identity,
		Memberships: deps.Memberships,
		OrgID:       deps.SingleOrgID,
		OrgSlug:     deps.SingleOrgSlug,
		Logger:      deps.Logger,
	}
	primaryRole := queries.PrimaryRoleUseCase{
		Identity:    deps.Identity,
		Memberships: deps.Memberships,
		Logger:      deps.Logger,
	}
	authorize := queries.AuthorizeUseCase{
		Identity:    deps.Identity,
		Memberships: deps.Memberships,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	landing := queries.LandingUseCase{
		Identity:    deps.Identity,
		Memberships: deps.Memberships,
		Logger:      deps.Logger,
	}

	handler := httpadapter.Handler{
		ResolveOrganization: resolveOrg,
		ResolveSingleOrg:    resolveSingle,
		Authorize:           authorize,
		Landing:             landing,
		Logger:              deps.Logger,
	}

	return Module{
		Handler:     handler,
		PrimaryRole: primaryRole,
	}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// membership store. The identity provider stays caller-supplied so tests
// can exercise real session verification.
func NewInMemoryModule(identity ports.IdentityProvider, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Identity:    identity,
		Memberships: store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
