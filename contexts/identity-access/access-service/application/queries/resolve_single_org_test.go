package queries

import (
	"context"
	"errors"
	"testing"

	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/domain/roles"
)

func TestResolveSingleOrgConfigMissing(t *testing.T) {
	uc := ResolveSingleOrgUseCase{Identity: identityFor("u1"), Memberships: seededStore()}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrConfigMissing) {
		t.Fatalf("expected config missing, got %v", err)
	}
}

func TestResolveSingleOrgUnknownSlug(t *testing.T) {
	uc := ResolveSingleOrgUseCase{
		Identity:    identityFor("u1"),
		Memberships: seededStore(),
		OrgSlug:     "nowhere",
	}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrOrgNotFound) {
		t.Fatalf("expected org not found, got %v", err)
	}
}

func TestResolveSingleOrgBySlug(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "tuteur")

	uc := ResolveSingleOrgUseCase{
		Identity:    identityFor("u1"),
		Memberships: store,
		OrgSlug:     "acme",
	}
	orgCtx, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if orgCtx.OrganizationID != "org-acme" || orgCtx.Role != roles.Tuteur {
		t.Fatalf("unexpected context %+v", orgCtx)
	}
}

func TestResolveSingleOrgByIDWinsOverSlug(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "admin")

	uc := ResolveSingleOrgUseCase{
		Identity:    identityFor("u1"),
		Memberships: store,
		OrgID:       "org-acme",
		OrgSlug:     "acme",
	}
	orgCtx, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if orgCtx.Slug != "acme" {
		t.Fatalf("unexpected slug %s", orgCtx.Slug)
	}
}

func TestResolveSingleOrgIDSlugMismatch(t *testing.T) {
	store := seededStore()
	store.AddMembership("u1", "org-acme", "admin")

	uc := ResolveSingleOrgUseCase{
		Identity:    identityFor("u1"),
		Memberships: store,
		OrgID:       "org-acme",
		OrgSlug:     "globex",
	}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrConfigMissing) {
		t.Fatalf("expected config missing on mismatch, got %v", err)
	}
}

func TestResolveSingleOrgUnauthenticatedFirst(t *testing.T) {
	// Identity short-circuits even when configuration is absent.
	uc := ResolveSingleOrgUseCase{Identity: anonymous, Memberships: seededStore()}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestResolveSingleOrgEnforcesMembership(t *testing.T) {
	uc := ResolveSingleOrgUseCase{
		Identity:    identityFor("stranger"),
		Memberships: seededStore(),
		OrgSlug:     "acme",
	}
	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
