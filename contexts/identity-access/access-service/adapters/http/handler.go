package httpadapter

import (
	"context"
	"log/slog"

	application "campus/contexts/identity-access/access-service/application"
	"campus/contexts/identity-access/access-service/application/queries"
	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
	httptransport "campus/contexts/identity-access/access-service/transport/http"
)

// Handler maps HTTP DTOs to application queries.
type Handler struct {
	ResolveOrganization queries.ResolveOrganizationUseCase
	ResolveSingleOrg    queries.ResolveSingleOrgUseCase
	Authorize           queries.AuthorizeUseCase
	Landing             queries.LandingUseCase
	Logger              *slog.Logger
}

// ResolveOrganizationHandler resolves a slug-routed organization for the
// current session.
func (h Handler) ResolveOrganizationHandler(
	ctx context.Context,
	slug string,
) (httptransport.OrganizationContextResponse, error) {
	orgCtx, err := h.ResolveOrganization.Execute(ctx, slug)
	if err != nil {
		return httptransport.OrganizationContextResponse{}, err
	}
	return orgContextResponse(orgCtx), nil
}

// ResolveSingleOrgHandler resolves the configured single-tenant
// organization for the current session.
func (h Handler) ResolveSingleOrgHandler(
	ctx context.Context,
) (httptransport.OrganizationContextResponse, error) {
	orgCtx, err := h.ResolveSingleOrg.Execute(ctx)
	if err != nil {
		return httptransport.OrganizationContextResponse{}, err
	}
	return orgContextResponse(orgCtx), nil
}

// LandingHandler answers where the current session should land.
func (h Handler) LandingHandler(ctx context.Context) (httptransport.LandingResponse, error) {
	decision, err := h.Landing.Execute(ctx)
	if err != nil {
		return httptransport.LandingResponse{}, err
	}
	return httptransport.LandingResponse{
		Authenticated: decision.Authenticated,
		Role:          decision.Role.String(),
		Route:         decision.Route,
	}, nil
}

// AuthorizeHandler evaluates a requested scope for the current session.
func (h Handler) AuthorizeHandler(
	ctx context.Context,
	request httptransport.AuthorizeRequest,
) (httptransport.AuthorizeResponse, error) {
	logger := application.ResolveLogger(h.Logger)

	scope, err := parseScope(request)
	if err != nil {
		logger.Warn("http authorize rejected",
			"event", "access_http_invalid_scope",
			"module", "identity-access/access-service",
			"layer", "transport",
			"scope", request.Scope,
		)
		return httptransport.AuthorizeResponse{}, err
	}

	granted, err := h.Authorize.Execute(ctx, scope)
	if err != nil {
		return httptransport.AuthorizeResponse{}, err
	}

	resp := httptransport.AuthorizeResponse{
		Allowed:     true,
		DecisionID:  granted.DecisionID,
		PrincipalID: granted.Principal.ID,
		Role:        granted.Role.String(),
		Scope:       string(granted.GrantedScope.Kind),
		CheckedAt:   granted.CheckedAt,
	}
	if granted.Organization != nil {
		resp.OrganizationID = granted.Organization.ID
		resp.OrgSlug = granted.Organization.Slug
	}
	return resp, nil
}

// MeHandler echoes the resolved principal and primary role.
func (h Handler) MeHandler(ctx context.Context) (httptransport.MeResponse, error) {
	decision, err := h.Landing.Execute(ctx)
	if err != nil {
		return httptransport.MeResponse{}, err
	}
	if !decision.Authenticated {
		return httptransport.MeResponse{}, domainerrors.ErrUnauthenticated
	}
	return httptransport.MeResponse{
		PrincipalID:  decision.Principal.ID,
		Email:        decision.Principal.Email,
		FullName:     decision.Principal.FullName,
		Role:         decision.Role.String(),
		LandingRoute: decision.Route,
	}, nil
}

func orgContextResponse(orgCtx entities.OrganizationContext) httptransport.OrganizationContextResponse {
	return httptransport.OrganizationContextResponse{
		OrganizationID: orgCtx.OrganizationID,
		Slug:           orgCtx.Slug,
		Role:           orgCtx.Role.String(),
		LandingRoute:   services.OrgLandingRoute(orgCtx.Role, orgCtx.Slug),
	}
}

func parseScope(request httptransport.AuthorizeRequest) (entities.Scope, error) {
	switch entities.ScopeKind(request.Scope) {
	case entities.ScopeGlobalRole:
		role, err := roles.Parse(request.Role)
		if err != nil {
			return entities.Scope{}, domainerrors.ErrInvalidScope
		}
		return entities.GlobalRole(role), nil
	case entities.ScopeOrgMember:
		return entities.OrgMember(request.OrgSlug), nil
	case entities.ScopeSuperAdmin:
		return entities.SuperAdmin(), nil
	case entities.ScopeOrgFeature:
		return entities.OrgFeature(request.OrgSlug, request.Feature), nil
	default:
		return entities.Scope{}, domainerrors.ErrInvalidScope
	}
}
