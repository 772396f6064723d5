package services

import (
	"fmt"

	"campus/contexts/identity-access/access-service/domain/roles"
)

// Landing paths per role. LoginPath is the landing for principals with no
// resolved role.
const (
	AdminLandingPath     = "/admin/dashboard"
	FormateurLandingPath = "/dashboard/formateur"
	TuteurLandingPath    = "/dashboard/tuteur"
	ApprenantLandingPath = "/dashboard/apprenant"
	LoginPath            = "/login"
)

// LandingRoute maps a resolved role to the canonical first screen. It is
// pure and total: every input yields exactly one non-empty path. A value
// outside the closed role set falls back to the formateur dashboard; that
// default is intentional, and callers log when they hit it (see
// LandingRouteKnown).
func LandingRoute(role roles.Role) string {
	path, _ := LandingRouteKnown(role)
	return path
}

// LandingRouteKnown additionally reports whether the role was recognized,
// so callers can surface the fallback without the router doing I/O.
func LandingRouteKnown(role roles.Role) (string, bool) {
	switch role {
	case roles.Admin:
		return AdminLandingPath, true
	case roles.Formateur:
		return FormateurLandingPath, true
	case roles.Tuteur:
		return TuteurLandingPath, true
	case roles.Apprenant:
		return ApprenantLandingPath, true
	case "":
		return LoginPath, true
	default:
		return FormateurLandingPath, false
	}
}

// OrgLandingRoute scopes the admin dashboard to the resolved organization.
// Non-admin roles keep their global dashboard paths.
func OrgLandingRoute(role roles.Role, slug string) string {
	if role == roles.Admin && slug != "" {
		return fmt.Sprintf("/admin/%s/dashboard", slug)
	}
	return LandingRoute(role)
}
