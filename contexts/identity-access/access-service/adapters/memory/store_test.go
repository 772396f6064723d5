package memory

import (
	"context"
	"testing"

	"campus/contexts/identity-access/access-service/domain/entities"
)

func TestOrganizationLookup(t *testing.T) {
	store := NewStore()
	store.AddOrganization(entities.Organization{ID: "org-1", Slug: "acme"})

	org, found, err := store.OrganizationBySlug(context.Background(), "acme")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !found || org.ID != "org-1" {
		t.Fatalf("unexpected org %+v found=%v", org, found)
	}

	if _, found, _ := store.OrganizationBySlug(context.Background(), "missing"); found {
		t.Fatal("unknown slug must not resolve")
	}

	org, found, err = store.OrganizationByID(context.Background(), "org-1")
	if err != nil || !found || org.Slug != "acme" {
		t.Fatalf("unexpected by-id result %+v found=%v err=%v", org, found, err)
	}
}

func TestMembershipsAreScopedToPrincipal(t *testing.T) {
	store := NewStore()
	store.AddMembership("u1", "org-1", "admin")
	store.AddMembership("u1", "org-2", "apprenant")
	store.AddMembership("u2", "org-1", "tuteur")

	rows, err := store.MembershipsOf(context.Background(), "u1")
	if err != nil {
		t.Fatalf("memberships failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.PrincipalID != "u1" {
			t.Fatalf("row leaked from another principal: %+v", row)
		}
	}
}

func TestSuperAdminFlag(t *testing.T) {
	store := NewStore()
	store.SetSuperAdmin("root")

	if ok, _ := store.IsSuperAdmin(context.Background(), "root"); !ok {
		t.Fatal("expected super-admin")
	}
	if ok, _ := store.IsSuperAdmin(context.Background(), "u1"); ok {
		t.Fatal("unexpected super-admin")
	}
}

func TestFeatureFlags(t *testing.T) {
	store := NewStore()
	store.SetFeature("org-1", "beyond_care", true)

	if on, _ := store.OrgFeatureEnabled(context.Background(), "org-1", "beyond_care"); !on {
		t.Fatal("expected enabled flag")
	}
	if on, _ := store.OrgFeatureEnabled(context.Background(), "org-1", "other"); on {
		t.Fatal("unknown flag must be off")
	}
	if on, _ := store.OrgFeatureEnabled(context.Background(), "org-2", "beyond_care"); on {
		t.Fatal("flag must be org-scoped")
	}
}

func TestIdentityAdapter(t *testing.T) {
	principal := entities.Principal{ID: "u1", Email: "u1@example.org"}
	got, ok, err := Identity{Principal: principal}.CurrentPrincipal(context.Background())
	if err != nil || !ok || got.ID != "u1" {
		t.Fatalf("unexpected identity result %+v ok=%v err=%v", got, ok, err)
	}

	_, ok, err = Identity{Anonymous: true}.CurrentPrincipal(context.Background())
	if err != nil || ok {
		t.Fatalf("expected anonymous, ok=%v err=%v", ok, err)
	}
}
