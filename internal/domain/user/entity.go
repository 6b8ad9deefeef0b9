package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleHRAdmin    Role = "hr-admin"
	RoleDeveloper  Role = "developer"
	RoleTeamLeader Role = "teamLeader"
	RoleEmployee   Role = "employee"
)

// ParseRole normalizes a role string. Role comparisons are
// case-insensitive everywhere.
func ParseRole(s string) Role {
	for _, r := range []Role{RoleAdmin, RoleHRAdmin, RoleDeveloper, RoleTeamLeader, RoleEmployee} {
		if strings.EqualFold(s, string(r)) {
			return r
		}
	}
	return RoleEmployee
}

// Is compares roles case-insensitively.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// In reports whether r matches any of the given roles.
func (r Role) In(roles ...Role) bool {
	for _, other := range roles {
		if r.Is(other) {
			return true
		}
	}
	return false
}

// ManagementRoles are allowed to act on other people's data.
var ManagementRoles = []Role{RoleAdmin, RoleHRAdmin, RoleDeveloper}

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanManage reports whether the user holds a management role.
func (u *User) CanManage() bool {
	return u.Role.In(ManagementRoles...)
}
