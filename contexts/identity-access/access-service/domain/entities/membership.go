package entities

// Membership associates a principal with an organization and a raw role
// string as stored. The backing store may hold several rows per
// (principal, organization) pair; precedence resolution in
// domain/services derives the single effective role.
type Membership struct {
	PrincipalID    string `json:"principal_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
}
