package queries

import (
	"context"
	"errors"

	"campus/contexts/identity-access/access-service/adapters/memory"
	"campus/contexts/identity-access/access-service/domain/entities"
)

func seededStore() *memory.Store {
	store := memory.NewStore()
	store.AddOrganization(entities.Organization{ID: "org-acme", Slug: "acme"})
	store.AddOrganization(entities.Organization{ID: "org-globex", Slug: "globex"})
	return store
}

func identityFor(id string) memory.Identity {
	return memory.Identity{Principal: entities.Principal{ID: id}}
}

var anonymous = memory.Identity{Anonymous: true}

type failingIdentity struct{}

func (failingIdentity) CurrentPrincipal(context.Context) (entities.Principal, bool, error) {
	return entities.Principal{}, false, errors.New("session backend unavailable")
}
