package httptransport

import "time"

// ErrorResponse is the deny/error envelope. RedirectTo tells page
// collaborators where to send the user; this service never redirects
// itself.
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// OrganizationContextResponse is a successful organization resolution.
type OrganizationContextResponse struct {
	OrganizationID string `json:"organization_id"`
	Slug           string `json:"slug"`
	Role           string `json:"role"`
	LandingRoute   string `json:"landing_route"`
}

// LandingResponse is the canonical first screen for the current session.
type LandingResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Route         string `json:"route"`
}

// AuthorizeRequest names a scope to evaluate for the current session.
// Scope is one of global_role, org_member, super_admin, org_feature.
type AuthorizeRequest struct {
	Scope   string `json:"scope"`
	Role    string `json:"role,omitempty"`
	OrgSlug string `json:"org_slug,omitempty"`
	Feature string `json:"feature,omitempty"`
}

// AuthorizeResponse is an ALLOW verdict with its resolved context.
type AuthorizeResponse struct {
	Allowed        bool      `json:"allowed"`
	DecisionID     string    `json:"decision_id"`
	PrincipalID    string    `json:"principal_id"`
	OrganizationID string    `json:"organization_id,omitempty"`
	OrgSlug        string    `json:"org_slug,omitempty"`
	Role           string    `json:"role,omitempty"`
	Scope          string    `json:"scope"`
	CheckedAt      time.Time `json:"checked_at"`
}

// MeResponse echoes the resolved principal and primary role.
type MeResponse struct {
	PrincipalID  string `json:"principal_id"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Role         string `json:"role,omitempty"`
	LandingRoute string `json:"landing_route"`
}
