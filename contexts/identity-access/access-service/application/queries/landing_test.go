package queries

import (
	"context"
	"errors"
	"testing"

	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
	"campus/contexts/identity-access/access-service/domain/services"
)

func TestLandingAnonymousGoesToLogin(t *testing.T) {
	uc := LandingUseCase{Identity: anonymous, Memberships: seededStore()}
	decision, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("landing failed: %v", err)
	}
	if decision.Authenticated {
		t.Fatal("expected anonymous decision")
	}
	if decision.Route != services.LoginPath {
		t.Fatalf("expected login route, got %s", decision.Route)
	}
}

func TestLandingPerRole(t *testing.T) {
	cases := []struct {
		role  string
		route string
	}{
		{"admin", services.AdminLandingPath},
		{"formateur", services.FormateurLandingPath},
		{"tuteur", services.TuteurLandingPath},
		{"apprenant", services.ApprenantLandingPath},
	}
	for _, tc := range cases {
		store := seededStore()
		store.AddMembership("u1", "org-acme", tc.role)
		uc := LandingUseCase{Identity: identityFor("u1"), Memberships: store}
		decision, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("landing for %s failed: %v", tc.role, err)
		}
		if decision.Route != tc.route {
			t.Fatalf("role %s: expected %s, got %s", tc.role, tc.route, decision.Route)
		}
	}
}

func TestLandingNoMembershipsGoesToLogin(t *testing.T) {
	uc := LandingUseCase{Identity: identityFor("u1"), Memberships: seededStore()}
	decision, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("landing failed: %v", err)
	}
	if decision.Route != services.LoginPath {
		t.Fatalf("expected login route, got %s", decision.Route)
	}
	if !decision.Authenticated {
		t.Fatal("principal is authenticated even without memberships")
	}
}

func TestLandingUnknownRoleFallsBackToFormateur(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "owner")
	uc := LandingUseCase{Identity: identityFor("u1"), Memberships: store}
	decision, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("landing failed: %v", err)
	}
	if decision.Route != services.FormateurLandingPath {
		t.Fatalf("expected formateur fallback, got %s", decision.Route)
	}
}

func TestLandingIdentityFailureIsResolutionError(t *testing.T) {
	uc := LandingUseCase{
		Identity:    failingIdentity{},
		Memberships: seededStore(),
	}
	_, err := uc.Execute(context.Background())
	if !domainerrors.IsResolution(err) {
		t.Fatalf("expected resolution error, got %v", err)
	}
}

func TestPrimaryRoleUseCase(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "apprenant")
	store.AddMembership("u1", "org-globex", "admin")

	role, found, err := PrimaryRoleUseCase{Identity: identityFor("u1"), Memberships: store}.Execute(context.Background())
	if err != nil {
		t.Fatalf("primary role failed: %v", err)
	}
	if !found || role != roles.Admin {
		t.Fatalf("expected admin, got %s found=%v", role, found)
	}

	_, found, err = PrimaryRoleUseCase{Identity: identityFor("nobody"), Memberships: store}.Execute(context.Background())
	if err != nil {
		t.Fatalf("primary role failed: %v", err)
	}
	if found {
		t.Fatal("expected no role for principal without memberships")
	}

	_, _, err = PrimaryRoleUseCase{Identity: anonymous, Memberships: store}.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
