package services

import (
	"campus/contexts/identity-access/access-service/domain/entities"
	"campus/contexts/identity-access/access-service/domain/roles"
)

// PrimaryRole derives the single effective role from a membership
// snapshot using the fixed precedence admin > formateur > tuteur >
// apprenant. The second result is false when the snapshot holds no
// recognizable role; absence is a normal outcome, not an error.
func PrimaryRole(memberships []entities.Membership) (roles.Role, bool) {
	best := roles.Role("")
	found := false
	for _, m := range memberships {
		role, err := roles.Parse(m.Role)
		if err != nil {
			// Unknown stored strings never win precedence.
			continue
		}
		if !found || roles.Stronger(role, best) {
			best = role
			found = true
		}
	}
	return best, found
}

// PrimaryRoleInOrg applies the same precedence within one organization.
func PrimaryRoleInOrg(memberships []entities.Membership, orgID string) (roles.Role, bool) {
	scoped := make([]entities.Membership, 0, len(memberships))
	for _, m := range memberships {
		if m.OrganizationID == orgID {
			scoped = append(scoped, m)
		}
	}
	return PrimaryRole(scoped)
}

// HasMembershipInOrg reports whether the snapshot holds any row for the
// organization, regardless of whether the stored role string parses.
func HasMembershipInOrg(memberships []entities.Membership, orgID string) bool {
	for _, m := range memberships {
		if m.OrganizationID == orgID {
			return true
		}
	}
	return false
}
