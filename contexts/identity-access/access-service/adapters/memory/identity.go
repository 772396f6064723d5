package memory

import (
	"context"

	"campus/contexts/identity-access/access-service/domain/entities"
)

// Identity is a fixed identity provider for tests and local wiring.
type Identity struct {
	Principal entities.Principal
	Anonymous bool
	Err       error
}

func (i Identity) CurrentPrincipal(_ context.Context) (entities.Principal, bool, error) {
	if i.Err != nil {
		return entities.Principal{}, false, i.Err
	}
	if i.Anonymous {
		return entities.Principal{}, false, nil
	}
	return i.Principal, true, nil
}
