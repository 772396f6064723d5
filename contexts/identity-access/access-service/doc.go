// Package access implements the Organization & Role Resolution service inside Campus.
//
// Layering:
// - domain: role enum, entities, deny taxonomy, pure decision services
// - application: request-scoped queries using explicit ports
// - ports: stable boundaries for identity and membership lookups
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Every operation is read-only; nothing here mutates tenant state.
// - Membership and role data are fetched fresh per evaluation; only the
//   slug-to-organization mapping may be cached for the process lifetime.
package access
