package queries

import (
	"context"
	"log/slog"
	"strings"

	application "campus/contexts/identity-access/access-service/application"
	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/ports"
)

// ResolveSingleOrgUseCase selects the organization in single-tenant
// deployments from configuration, never from request input. A crafted
// slug therefore cannot bypass the single-tenant lock; this is a distinct
// code path from slug resolution, not a special case of it.
type ResolveSingleOrgUseCase struct {
	Identity    ports.IdentityProvider
	Memberships ports.MembershipStore
	OrgID       string
	OrgSlug     string
	Logger      *slog.Logger
}

func (u ResolveSingleOrgUseCase) Execute(ctx context.Context) (entities.OrganizationContext, error) {
	logger := application.ResolveLogger(u.Logger)

	principal, err := requirePrincipal(ctx, u.Identity)
	if err != nil {
		return entities.OrganizationContext{}, err
	}

	orgID := strings.TrimSpace(u.OrgID)
	orgSlug := strings.TrimSpace(u.OrgSlug)
	if orgID == "" && orgSlug == "" {
		return entities.OrganizationContext{}, domainerrors.ErrConfigMissing
	}

	org, err := u.lookupConfigured(ctx, orgID, orgSlug)
	if err != nil {
		return entities.OrganizationContext{}, err
	}

	return resolveOrgContext(ctx, u.Memberships, logger, principal, org)
}

// lookupConfigured resolves by id when set, otherwise by slug. When both
// are configured they must name the same organization; a mismatch is a
// deployment misconfiguration, not a lookup miss.
func (u ResolveSingleOrgUseCase) lookupConfigured(
	ctx context.Context,
	orgID string,
	orgSlug string,
) (entities.Organization, error) {
	if orgID != "" {
		org, found, err := u.Memberships.OrganizationByID(ctx, orgID)
		if err != nil {
			return entities.Organization{}, domainerrors.NewResolution("membership.organization_by_id", err)
		}
		if !found {
			return entities.Organization{}, domainerrors.ErrOrgNotFound
		}
		if orgSlug != "" && org.Slug != orgSlug {
			return entities.Organization{}, domainerrors.ErrConfigMissing
		}
		return org, nil
	}

	org, found, err := u.Memberships.OrganizationBySlug(ctx, orgSlug)
	if err != nil {
		return entities.Organization{}, domainerrors.NewResolution("membership.organization_by_slug", err)
	}
	if !found {
		return entities.Organization{}, domainerrors.ErrOrgNotFound
	}
	return org, nil
}
