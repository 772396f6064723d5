package entities

import "campus/contexts/identity-access/access-service/domain/roles"

// ScopeKind discriminates the closed set of gate predicates.
type ScopeKind string

const (
	ScopeGlobalRole ScopeKind = "global_role"
	ScopeOrgMember  ScopeKind = "org_member"
	ScopeSuperAdmin ScopeKind = "super_admin"
	ScopeOrgFeature ScopeKind = "org_feature"
)

// Scope is a requested authorization scope. Use the constructors; a
// zero Scope is not a valid request.
type Scope struct {
	Kind    ScopeKind  `json:"kind"`
	Role    roles.Role `json:"role,omitempty"`
	OrgSlug string     `json:"org_slug,omitempty"`
	Feature string     `json:"feature,omitempty"`
}

// GlobalRole requires the principal's platform-wide primary role to equal
// role. Super-admin does not substitute for a named functional role.
func GlobalRole(role roles.Role) Scope {
	return Scope{Kind: ScopeGlobalRole, Role: role}
}

// OrgMember requires any membership in the organization, or super-admin.
func OrgMember(slug string) Scope {
	return Scope{Kind: ScopeOrgMember, OrgSlug: slug}
}

// SuperAdmin requires the global super-admin flag.
func SuperAdmin() Scope {
	return Scope{Kind: ScopeSuperAdmin}
}

// OrgFeature requires super-admin, or admin membership in the organization
// with the named feature flag enabled.
func OrgFeature(slug string, feature string) Scope {
	return Scope{Kind: ScopeOrgFeature, OrgSlug: slug, Feature: feature}
}
