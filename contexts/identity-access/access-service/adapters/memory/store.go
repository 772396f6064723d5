package memory

import (
	"context"
	"sync"
	"time"

	"campus/contexts/identity-access/access-service/domain/entities"

	"github.com/google/uuid"
)

// Store is an in-memory membership store for tests and local development
// wiring. It also implements the Clock and IDGenerator ports.
type Store struct {
	mu sync.RWMutex

	orgs        map[string]entities.Organization
	slugs       map[string]string
	memberships []entities.Membership
	superAdmins map[string]struct{}
	features    map[string]map[string]bool
}

func NewStore() *Store {
	return &Store{
		orgs:        make(map[string]entities.Organization),
		slugs:       make(map[string]string),
		superAdmins: make(map[string]struct{}),
		features:    make(map[string]map[string]bool),
	}
}

// AddOrganization registers a tenant. Later registrations with the same
// slug overwrite the mapping, matching slug uniqueness in the schema.
func (s *Store) AddOrganization(org entities.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[org.ID] = org
	s.slugs[org.Slug] = org.ID
}

// AddMembership appends a membership row. Duplicate (principal, org)
// pairs are allowed on purpose: precedence resolution has to cope with
// them, the store makes no uniqueness promise.
func (s *Store) AddMembership(principalID, orgID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = append(s.memberships, entities.Membership{
		PrincipalID:    principalID,
		OrganizationID: orgID,
		Role:           role,
	})
}

func (s *Store) SetSuperAdmin(principalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.superAdmins[principalID] = struct{}{}
}

func (s *Store) SetFeature(orgID, feature string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.features[orgID] == nil {
		s.features[orgID] = make(map[string]bool)
	}
	s.features[orgID][feature] = enabled
}

func (s *Store) MembershipsOf(_ context.Context, principalID string) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Membership
	for _, m := range s.memberships {
		if m.PrincipalID == principalID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) OrganizationBySlug(_ context.Context, slug string) (entities.Organization, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.slugs[slug]
	if !ok {
		return entities.Organization{}, false, nil
	}
	return s.orgs[id], true, nil
}

func (s *Store) OrganizationByID(_ context.Context, orgID string) (entities.Organization, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	org, ok := s.orgs[orgID]
	return org, ok, nil
}

func (s *Store) IsSuperAdmin(_ context.Context, principalID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.superAdmins[principalID]
	return ok, nil
}

func (s *Store) OrgFeatureEnabled(_ context.Context, orgID string, feature string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.features[orgID][feature], nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
