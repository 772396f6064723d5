package queries

import (
	"context"
	"log/slog"
	"strings"

	application "campus/contexts/identity-access/access-service/application"
	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
	"campus/contexts/identity-access/access-service/ports"
)

// ResolveOrganizationUseCase maps a request-supplied slug to a validated
// organization context, enforcing membership. Read-only and idempotent;
// concurrent resolutions never interfere.
type ResolveOrganizationUseCase struct {
	Identity    ports.IdentityProvider
	Memberships ports.MembershipStore
	Logger      *slog.Logger
}

// Execute resolves one slug for the current principal from a single
// membership snapshot.
func (u ResolveOrganizationUseCase) Execute(ctx context.Context, slug string) (entities.OrganizationContext, error) {
	logger := application.ResolveLogger(u.Logger)

	principal, err := requirePrincipal(ctx, u.Identity)
	if err != nil {
		return entities.OrganizationContext{}, err
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.OrganizationContext{}, domainerrors.ErrOrgNotFound
	}

	org, found, err := u.Memberships.OrganizationBySlug(ctx, slug)
	if err != nil {
		return entities.OrganizationContext{}, domainerrors.NewResolution("membership.organization_by_slug", err)
	}
	if !found {
		return entities.OrganizationContext{}, domainerrors.ErrOrgNotFound
	}

	return resolveOrgContext(ctx, u.Memberships, logger, principal, org)
}

// resolveOrgContext derives the principal's role in org from one
// membership snapshot, applying the super-admin override for non-members.
// Shared with the single-organization fallback resolver.
func resolveOrgContext(
	ctx context.Context,
	store ports.MembershipStore,
	logger *slog.Logger,
	principal entities.Principal,
	org entities.Organization,
) (entities.OrganizationContext, error) {
	memberships, err := store.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return entities.OrganizationContext{}, domainerrors.NewResolution("membership.memberships_of", err)
	}

	if !services.HasMembershipInOrg(memberships, org.ID) {
		super, err := store.IsSuperAdmin(ctx, principal.ID)
		if err != nil {
			return entities.OrganizationContext{}, domainerrors.NewResolution("membership.is_super_admin", err)
		}
		if !super {
			logger.Warn("organization access denied",
				"event", "access_org_denied",
				"module", "identity-access/access-service",
				"layer", "application",
				"principal_id", principal.ID,
				"organization_id", org.ID,
				"slug", org.Slug,
			)
			return entities.OrganizationContext{}, domainerrors.ErrForbidden
		}
		// Super-admin without membership operates the org as admin.
		return entities.OrganizationContext{
			OrganizationID: org.ID,
			Slug:           org.Slug,
			Role:           roles.Admin,
		}, nil
	}

	role, found := services.PrimaryRoleInOrg(memberships, org.ID)
	if !found {
		// Membership rows exist but none carries a recognizable role.
		logger.Warn("membership with unknown role",
			"event", "access_org_unknown_role",
			"module", "identity-access/access-service",
			"layer", "application",
			"principal_id", principal.ID,
			"organization_id", org.ID,
		)
		return entities.OrganizationContext{}, domainerrors.ErrUnknownRole
	}

	return entities.OrganizationContext{
		OrganizationID: org.ID,
		Slug:           org.Slug,
		Role:           role,
	}, nil
}
