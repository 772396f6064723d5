package queries

import (
	"context"
	"log/slog"

	application "campus/contexts/identity-access/access-service/application"
	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
	"campus/contexts/identity-access/access-service/ports"
)

// LandingDecision is the canonical first screen for the current principal.
type LandingDecision struct {
	Authenticated bool
	Principal     entities.Principal
	Role          roles.Role
	RoleFound     bool
	Route         string
}

// LandingUseCase answers generic "/admin" or "/dashboard" entry points:
// where should this session land. Anonymous sessions land on the login
// page; that is a decision, not a failure.
type LandingUseCase struct {
	Identity    ports.IdentityProvider
	Memberships ports.MembershipStore
	Logger      *slog.Logger
}

func (u LandingUseCase) Execute(ctx context.Context) (LandingDecision, error) {
	logger := application.ResolveLogger(u.Logger)

	principal, ok, err := u.Identity.CurrentPrincipal(ctx)
	if err != nil {
		return LandingDecision{}, domainerrors.NewResolution("identity.current_principal", err)
	}
	if !ok {
		return LandingDecision{Route: services.LoginPath}, nil
	}

	memberships, err := u.Memberships.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return LandingDecision{}, domainerrors.NewResolution("membership.memberships_of", err)
	}

	role, found := services.PrimaryRole(memberships)
	if !found && len(memberships) > 0 {
		// Memberships whose stored role is outside the closed set land on
		// the formateur dashboard. Intentional default, kept observable.
		logger.Warn("unrecognized role, using formateur landing",
			"event", "access_landing_unknown_role",
			"module", "identity-access/access-service",
			"layer", "application",
			"principal_id", principal.ID,
		)
		return LandingDecision{
			Authenticated: true,
			Principal:     principal,
			Route:         services.FormateurLandingPath,
		}, nil
	}

	return LandingDecision{
		Authenticated: true,
		Principal:     principal,
		Role:          role,
		RoleFound:     found,
		Route:         services.LandingRoute(role),
	}, nil
}
