package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "campus/contexts/identity-access/access-service/application"
	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
	"campus/contexts/identity-access/access-service/ports"
)

// AuthorizeUseCase evaluates a requested scope against the current
// identity, membership snapshot and feature flags. The verdict, once
// computed from adapter results, is final for the request: no retries.
type AuthorizeUseCase struct {
	Identity    ports.IdentityProvider
	Memberships ports.MembershipStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute returns an AccessContext on ALLOW or a typed deny reason.
// Super-admin satisfies OrgMember, OrgFeature and SuperAdmin scopes but
// never substitutes for a specific named role in GlobalRole.
func (u AuthorizeUseCase) Execute(ctx context.Context, scope entities.Scope) (entities.AccessContext, error) {
	logger := application.ResolveLogger(u.Logger)

	principal, err := requirePrincipal(ctx, u.Identity)
	if err != nil {
		return entities.AccessContext{}, err
	}

	var (
		org  *entities.Organization
		role roles.Role
	)

	switch scope.Kind {
	case entities.ScopeGlobalRole:
		role, err = u.evaluateGlobalRole(ctx, principal, scope)
	case entities.ScopeOrgMember:
		org, role, err = u.evaluateOrgMember(ctx, principal, scope)
	case entities.ScopeSuperAdmin:
		role, err = u.evaluateSuperAdmin(ctx, principal)
	case entities.ScopeOrgFeature:
		org, role, err = u.evaluateOrgFeature(ctx, principal, scope)
	default:
		err = domainerrors.ErrInvalidScope
	}
	if err != nil {
		u.logVerdict(logger, principal, scope, err)
		return entities.AccessContext{}, err
	}

	decisionID := ""
	if u.IDGenerator != nil {
		decisionID, err = u.IDGenerator.NewID(ctx)
		if err != nil {
			return entities.AccessContext{}, domainerrors.NewResolution("idgen.new_id", err)
		}
	}

	granted := entities.AccessContext{
		DecisionID:   decisionID,
		Principal:    principal,
		Organization: org,
		Role:         role,
		GrantedScope: scope,
		CheckedAt:    u.now(),
	}
	logger.Debug("access granted",
		"event", "access_granted",
		"module", "identity-access/access-service",
		"layer", "application",
		"principal_id", principal.ID,
		"scope_kind", string(scope.Kind),
		"decision_id", decisionID,
	)
	return granted, nil
}

func (u AuthorizeUseCase) evaluateGlobalRole(
	ctx context.Context,
	principal entities.Principal,
	scope entities.Scope,
) (roles.Role, error) {
	if !scope.Role.Valid() {
		return "", domainerrors.ErrInvalidScope
	}
	memberships, err := u.Memberships.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return "", domainerrors.NewResolution("membership.memberships_of", err)
	}
	primary, found := services.PrimaryRole(memberships)
	if !found || primary != scope.Role {
		return "", domainerrors.ErrForbidden
	}
	return primary, nil
}

func (u AuthorizeUseCase) evaluateOrgMember(
	ctx context.Context,
	principal entities.Principal,
	scope entities.Scope,
) (*entities.Organization, roles.Role, error) {
	org, err := u.lookupOrg(ctx, scope.OrgSlug)
	if err != nil {
		return nil, "", err
	}
	memberships, err := u.Memberships.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return nil, "", domainerrors.NewResolution("membership.memberships_of", err)
	}
	if services.HasMembershipInOrg(memberships, org.ID) {
		role, _ := services.PrimaryRoleInOrg(memberships, org.ID)
		return &org, role, nil
	}
	super, err := u.Memberships.IsSuperAdmin(ctx, principal.ID)
	if err != nil {
		return nil, "", domainerrors.NewResolution("membership.is_super_admin", err)
	}
	if !super {
		return nil, "", domainerrors.ErrForbidden
	}
	return &org, roles.Admin, nil
}

func (u AuthorizeUseCase) evaluateSuperAdmin(
	ctx context.Context,
	principal entities.Principal,
) (roles.Role, error) {
	super, err := u.Memberships.IsSuperAdmin(ctx, principal.ID)
	if err != nil {
		return "", domainerrors.NewResolution("membership.is_super_admin", err)
	}
	if !super {
		return "", domainerrors.ErrForbidden
	}
	return roles.Admin, nil
}

func (u AuthorizeUseCase) evaluateOrgFeature(
	ctx context.Context,
	principal entities.Principal,
	scope entities.Scope,
) (*entities.Organization, roles.Role, error) {
	if strings.TrimSpace(scope.Feature) == "" {
		return nil, "", domainerrors.ErrInvalidScope
	}
	org, err := u.lookupOrg(ctx, scope.OrgSlug)
	if err != nil {
		return nil, "", err
	}

	// Super-admin bypasses the flag entirely, checked before membership so
	// a super-admin who also happens to be org admin is not gated.
	super, err := u.Memberships.IsSuperAdmin(ctx, principal.ID)
	if err != nil {
		return nil, "", domainerrors.NewResolution("membership.is_super_admin", err)
	}
	if super {
		return &org, roles.Admin, nil
	}

	memberships, err := u.Memberships.MembershipsOf(ctx, principal.ID)
	if err != nil {
		return nil, "", domainerrors.NewResolution("membership.memberships_of", err)
	}
	role, found := services.PrimaryRoleInOrg(memberships, org.ID)
	if !found || role != roles.Admin {
		return nil, "", domainerrors.ErrForbidden
	}

	enabled, err := u.Memberships.OrgFeatureEnabled(ctx, org.ID, scope.Feature)
	if err != nil {
		return nil, "", domainerrors.NewResolution("membership.org_feature_enabled", err)
	}
	if !enabled {
		return nil, "", domainerrors.ErrFeatureDisabled
	}
	return &org, role, nil
}

func (u AuthorizeUseCase) lookupOrg(ctx context.Context, slug string) (entities.Organization, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Organization{}, domainerrors.ErrInvalidScope
	}
	org, found, err := u.Memberships.OrganizationBySlug(ctx, slug)
	if err != nil {
		return entities.Organization{}, domainerrors.NewResolution("membership.organization_by_slug", err)
	}
	if !found {
		return entities.Organization{}, domainerrors.ErrOrgNotFound
	}
	return org, nil
}

func (u AuthorizeUseCase) logVerdict(
	logger *slog.Logger,
	principal entities.Principal,
	scope entities.Scope,
	err error,
) {
	if domainerrors.IsResolution(err) {
		logger.Error("access evaluation failed",
			"event", "access_resolution_error",
			"module", "identity-access/access-service",
			"layer", "application",
			"principal_id", principal.ID,
			"scope_kind", string(scope.Kind),
			"error", err.Error(),
		)
		return
	}
	logger.Warn("access denied",
		"event", "access_denied",
		"module", "identity-access/access-service",
		"layer", "application",
		"principal_id", principal.ID,
		"scope_kind", string(scope.Kind),
		"reason", err.Error(),
	)
}

func (u AuthorizeUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
