package entities

// Principal is the authenticated identity making a request. It is produced
// by the identity provider at session-verification time and is immutable
// for the lifetime of the request.
type Principal struct {
	ID       string `json:"principal_id"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}
