package entity

// Decision is the outcome of a role gate check.
type Decision int

const (
	// DecisionDenied means no record exists for the identity under the role.
	DecisionDenied Decision = iota
	// DecisionAllowed means a record exists.
	DecisionAllowed
	// DecisionLookupFailed means the record store could not answer.
	DecisionLookupFailed
)

// String returns the string representation of the Decision.
func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionLookupFailed:
		return "lookup_failed"
	default:
		return "denied"
	}
}

// Admission carries a gate decision and, when allowed, the record found.
type Admission struct {
	Identity Identity
	Role     Role
	Decision Decision
	Record   *RoleRecord // Set only when Decision is DecisionAllowed.
}

// Allowed reports whether the identity may enter the role's dashboard.
func (a *Admission) Allowed() bool {
	return a != nil && a.Decision == DecisionAllowed
}
