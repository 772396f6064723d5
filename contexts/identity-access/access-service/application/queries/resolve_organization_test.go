package queries

import (
	"context"
	"errors"
	"testing"

	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
)

func TestResolveOrganizationMemberScenario(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "formateur")

	uc := ResolveOrganizationUseCase{Identity: identityFor("u1"), Memberships: store}
	orgCtx, err := uc.Execute(context.Background(), "acme")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if orgCtx.OrganizationID != "org-acme" || orgCtx.Slug != "acme" {
		t.Fatalf("unexpected org context %+v", orgCtx)
	}
	if orgCtx.Role != roles.Formateur {
		t.Fatalf("expected formateur, got %s", orgCtx.Role)
	}
}

func TestResolveOrganizationNonMemberForbidden(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "formateur")

	uc := ResolveOrganizationUseCase{Identity: identityFor("u1"), Memberships: store}
	_, err := uc.Execute(context.Background(), "globex")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestResolveOrganizationUnauthenticated(t *testing.T) {
	uc := ResolveOrganizationUseCase{Identity: anonymous, Memberships: seededStore()}
	_, err := uc.Execute(context.Background(), "acme")
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestResolveOrganizationUnknownSlug(t *testing.T) {
	uc := ResolveOrganizationUseCase{Identity: identityFor("u1"), Memberships: seededStore()}
	_, err := uc.Execute(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrOrgNotFound) {
		t.Fatalf("expected org not found, got %v", err)
	}
}

func TestResolveOrganizationSuperAdminOverride(t *testing.T) {
	store := seededStore()
	store.SetSuperAdmin("root")

	uc := ResolveOrganizationUseCase{Identity: identityFor("root"), Memberships: store}
	orgCtx, err := uc.Execute(context.Background(), "acme")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if orgCtx.Role != roles.Admin {
		t.Fatalf("super-admin override must resolve as admin, got %s", orgCtx.Role)
	}
}

func TestResolveOrganizationPrecedenceWithinOrg(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "apprenant")
	store.AddMembership("u1", "org-acme", "admin")

	uc := ResolveOrganizationUseCase{Identity: identityFor("u1"), Memberships: store}
	orgCtx, err := uc.Execute(context.Background(), "acme")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if orgCtx.Role != roles.Admin {
		t.Fatalf("expected admin by precedence, got %s", orgCtx.Role)
	}
}

func TestResolveOrganizationUnknownStoredRole(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "owner")

	uc := ResolveOrganizationUseCase{Identity: identityFor("u1"), Memberships: store}
	_, err := uc.Execute(context.Background(), "acme")
	if !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected unknown role, got %v", err)
	}
}
