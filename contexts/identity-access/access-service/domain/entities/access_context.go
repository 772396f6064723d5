package entities

import (
	"time"

	"campus/contexts/identity-access/access-service/domain/roles"
)

// AccessContext is the immutable outcome of a successful gate evaluation.
// It is owned by the request and discarded at request end; membership can
// change between requests, so it must never be cached across them.
type AccessContext struct {
	DecisionID   string        `json:"decision_id"`
	Principal    Principal     `json:"principal"`
	Organization *Organization `json:"organization,omitempty"`
	Role         roles.Role    `json:"role,omitempty"`
	GrantedScope Scope         `json:"granted_scope"`
	CheckedAt    time.Time     `json:"checked_at"`
}
