package roles

import "fmt"

// Role is the closed set of membership roles a principal can hold in an
// organization. Membership stores deliver free-form strings; Parse is the
// only place those strings become a Role.
type Role string

const (
	Admin     Role = "admin"
	Formateur Role = "formateur"
	Tuteur    Role = "tuteur"
	Apprenant Role = "apprenant"
)

// precedence orders roles from strongest to weakest. Administrative and
// teaching capabilities outrank learner capability. The membership store
// makes no ordering guarantee, so every multi-role resolution must go
// through this table.
var precedence = []Role{Admin, Formateur, Tuteur, Apprenant}

// All returns the closed role set in precedence order.
func All() []Role {
	out := make([]Role, len(precedence))
	copy(out, precedence)
	return out
}

// Rank returns the precedence index of a role, lower is stronger.
// Unknown values rank below every member of the closed set.
func Rank(r Role) int {
	for i, candidate := range precedence {
		if candidate == r {
			return i
		}
	}
	return len(precedence)
}

// Stronger reports whether a outranks b.
func Stronger(a, b Role) bool {
	return Rank(a) < Rank(b)
}

// Valid reports membership in the closed set.
func (r Role) Valid() bool {
	return Rank(r) < len(precedence)
}

func (r Role) String() string {
	return string(r)
}

// Parse maps a stored role string into the closed set.
func Parse(v string) (Role, error) {
	role := Role(v)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", v)
	}
	return role, nil
}
