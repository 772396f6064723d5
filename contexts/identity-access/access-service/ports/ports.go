package ports

import (
	"context"
	"time"

	"campus/contexts/identity-access/access-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for decision ids.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// IdentityProvider yields the current principal for a request. The second
// result is false for anonymous requests; that is a valid outcome, not an
// error. A non-nil error means the identity source itself failed and is
// surfaced as a resolution error, never as a deny.
type IdentityProvider interface {
	CurrentPrincipal(ctx context.Context) (entities.Principal, bool, error)
}

// MembershipStore is the read boundary over tenant membership state.
// Implementations may block on I/O; every method honors ctx cancellation.
// Membership and super-admin lookups must never be cached across requests.
type MembershipStore interface {
	MembershipsOf(ctx context.Context, principalID string) ([]entities.Membership, error)
	OrganizationBySlug(ctx context.Context, slug string) (entities.Organization, bool, error)
	OrganizationByID(ctx context.Context, orgID string) (entities.Organization, bool, error)
	IsSuperAdmin(ctx context.Context, principalID string) (bool, error)
	OrgFeatureEnabled(ctx context.Context, orgID string, feature string) (bool, error)
}
