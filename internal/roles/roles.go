// Package roles defines the closed set of FloodWatch user roles and the
// coarse-grained permission check used for triage and admin operations.
package roles

// Role is a named privilege tier. The set is closed: anything outside
// Regular/Volunteer/Admin is treated as unknown and granted nothing.
type Role string

const (
	Regular   Role = "regular"
	Volunteer Role = "volunteer"
	Admin     Role = "admin"
)

// rank orders roles by privilege. Higher rank implies every permission of
// the lower ranks.
var rank = map[Role]int{
	Regular:   0,
	Volunteer: 1,
	Admin:     2,
}

// Default is the role assigned to newly registered users when no role is
// requested explicitly.
const Default = Regular

// Parse validates a raw role string against the known set.
func Parse(s string) (Role, bool) {
	r := Role(s)
	_, ok := rank[r]
	return r, ok
}

// Valid reports whether r is a member of the known role set.
func Valid(r Role) bool {
	_, ok := rank[r]
	return ok
}

// HasPermission reports whether subject holds the privilege tier required.
// Unknown subject or required roles are never granted any permission.
func HasPermission(subject, required Role) bool {
	sr, ok := rank[subject]
	if !ok {
		return false
	}
	rr, ok := rank[required]
	if !ok {
		return false
	}
	return sr >= rr
}

// All returns the known roles in ascending privilege order.
func All() []Role {
	return []Role{Regular, Volunteer, Admin}
}
