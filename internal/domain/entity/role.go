// Package entity contains the core business objects of the food-aid domain.
package entity

// Role is the closed set of actor roles. Authorization rules are keyed on it
// and live in the authz package only.
type Role string

const (
	// RoleRecipient submits and follows their own aid requests.
	RoleRecipient Role = "recipient"
	// RoleFoodBankOperator administers exactly one food bank.
	RoleFoodBankOperator Role = "food_bank_operator"
	// RoleOrgAdmin oversees every food bank and request.
	RoleOrgAdmin Role = "org_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleRecipient, RoleFoodBankOperator, RoleOrgAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw string into a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
