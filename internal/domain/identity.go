package domain

// Role distinguishes the two account kinds.
type Role string

const (
	RoleSeeker  Role = "SEEKER"
	RoleCompany Role = "COMPANY"
)

// Valid reports whether the role is one of the known kinds.
func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleCompany
}

// Identity is the resolved caller for one request: a subject with a role,
// or anonymous. It is built from verified token claims only, never from
// unsigned client input, and is discarded when the request ends.
type Identity struct {
	SubjectID string
	Role      Role
}

// Anonymous is the zero identity for unauthenticated traffic.
var Anonymous = Identity{}

// IsAnonymous reports whether no subject was resolved.
func (i Identity) IsAnonymous() bool {
	return i.SubjectID == ""
}
