package queries

import (
	"context"

	"campus/contexts/identity-access/access-service/domain/entities"
	domainerrors "campus/contexts/identity-access/access-service/domain/errors"
	"campus/contexts/identity-access/access-service/ports"
)

// requirePrincipal resolves identity first so UNAUTHENTICATED short-circuits
// every operation. Identity-source failures become resolution errors.
func requirePrincipal(ctx context.Context, identity ports.IdentityProvider) (entities.Principal, error) {
	principal, ok, err := identity.CurrentPrincipal(ctx)
	if err != nil {
		return entities.Principal{}, domainerrors.NewResolution("identity.current_principal", err)
	}
	if !ok {
		return entities.Principal{}, domainerrors.ErrUnauthenticated
	}
	return principal, nil
}
