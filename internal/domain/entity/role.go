// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Authority is a coarse permission label checked by route-level access rules.
type Authority string

const (
	AuthorityUser  Authority = "ROLE_USER"
	AuthorityAdmin Authority = "ROLE_ADMIN"
)

// Authorities is the set of authorities granted to an identity.
type Authorities []Authority

// Has checks if the set contains a specific authority.
func (as Authorities) Has(authority Authority) bool {
	return slices.Contains(as, authority)
}

// AuthoritiesFor derives the authority set of a role. ADMIN implies USER.
// Unknown roles grant nothing.
func AuthoritiesFor(role Role) Authorities {
	switch role {
	case RoleAdmin:
		return Authorities{AuthorityAdmin, AuthorityUser}
	case RoleUser:
		return Authorities{AuthorityUser}
	default:
		return Authorities{}
	}
}
