package queries

import (
	"context"
	"log/slog"

	application "campus/contexts/identity-access/access-service/application"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
	"campus/contexts/identity-access/access-service/ports"
)

// PrimaryRoleUseCase derives the principal's platform-wide primary role
// from the full membership snapshot. Absence of a role is a normal result
// (found=false), never an error.
type PrimaryRoleUseCase struct {
	Identity    ports.IdentityProvider
	Memberships ports.MembershipStore
	Logger      *slog.Logger
}

func (u PrimaryRoleUseCase) Execute(ctx context.Context) (roles.Role, bool, error) {
	logger := application.ResolveLogger(u.Logger)

	principal, err := requirePrincipal(ctx, u.Identity)
	if err != nil {
		return "", false, err
	}

	memberships, err := u.Memberships.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return "", false, domainerrors.NewResolution("membership.memberships_of", err)
	}

	role, found := services.PrimaryRole(memberships)
	if !found && len(memberships) > 0 {
		logger.Warn("memberships present but no recognizable role",
			"event", "access_primary_role_unknown",
			"module", "identity-access/access-service",
			"layer", "application",
			"principal_id", principal.ID,
			"membership_count", len(memberships),
		)
	}
	return role, found, nil
}
