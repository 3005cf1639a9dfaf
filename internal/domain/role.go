package domain

// Role is the sole authorization attribute of a user. The set is closed.
type Role string

const (
	RoleStudent Role = "student"
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleManager:
		return true
	default:
		return false
	}
}

// ParseRole converts s into a Role, rejecting values outside the set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", NewValidationError("role", "must be one of student, manager", ErrInvalidRole)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}
