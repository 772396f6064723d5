package entities

import "campus/contexts/identity-access/access-service/domain/roles"

// Organization is a tenant boundary. Slug is unique and stable; the id
// never changes once assigned. Resolved read-only by this module.
type Organization struct {
	ID   string `json:"organization_id"`
	Slug string `json:"slug"`
}

// OrganizationContext is the validated result of resolving an organization
// for one principal: the tenant identity plus the principal's role in it.
type OrganizationContext struct {
	OrganizationID string     `json:"organization_id"`
	Slug           string     `json:"slug"`
	Role           roles.Role `json:"role"`
}
