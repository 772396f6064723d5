package services

import (
	"testing"

	"campus/contexts/identity-access/access-service/domain/entities"
	"campus/contexts/identity-access/access-service/domain/roles"
)

func membership(principal, org, role string) entities.Membership {
	return entities.Membership{
		PrincipalID:    principal,
		OrganizationID: org,
		Role:           role,
	}
}

func TestPrimaryRoleEmptySet(t *testing.T) {
	if _, found := PrimaryRole(nil); found {
		t.Fatal("empty membership set must yield no role")
	}
}

func TestPrimaryRolePrecedenceLaw(t *testing.T) {
	memberships := []entities.Membership{
		membership("u1", "org-1", "apprenant"),
		membership("u1", "org-1", "admin"),
	}
	role, found := PrimaryRole(memberships)
	if !found {
		t.Fatal("expected a resolved role")
	}
	if role != roles.Admin {
		t.Fatalf("expected admin by precedence, got %s", role)
	}
}

func TestPrimaryRoleDeterministic(t *testing.T) {
	memberships := []entities.Membership{
		membership("u1", "org-1", "tuteur"),
		membership("u1", "org-2", "formateur"),
		membership("u1", "org-3", "apprenant"),
	}
	first, _ := PrimaryRole(memberships)
	for i := 0; i < 10; i++ {
		again, _ := PrimaryRole(memberships)
		if again != first {
			t.Fatalf("resolution not deterministic: %s then %s", first, again)
		}
	}
	if first != roles.Formateur {
		t.Fatalf("expected formateur, got %s", first)
	}
}

func TestPrimaryRoleSkipsUnknownStrings(t *testing.T) {
	memberships := []entities.Membership{
		membership("u1", "org-1", "owner"),
		membership("u1", "org-1", "apprenant"),
	}
	role, found := PrimaryRole(memberships)
	if !found || role != roles.Apprenant {
		t.Fatalf("expected apprenant, got %s found=%v", role, found)
	}

	onlyUnknown := []entities.Membership{membership("u1", "org-1", "owner")}
	if _, found := PrimaryRole(onlyUnknown); found {
		t.Fatal("unknown-only membership set must yield no role")
	}
}

func TestPrimaryRoleInOrgScopes(t *testing.T) {
	memberships := []entities.Membership{
		membership("u1", "org-1", "apprenant"),
		membership("u1", "org-2", "admin"),
	}
	role, found := PrimaryRoleInOrg(memberships, "org-1")
	if !found || role != roles.Apprenant {
		t.Fatalf("expected apprenant in org-1, got %s found=%v", role, found)
	}
	if HasMembershipInOrg(memberships, "org-3") {
		t.Fatal("no membership expected in org-3")
	}
}
