package domain

import "time"

// Role is the privilege level of a bot user
type Role string

const (
	RoleOperator Role = "operator"
	RoleMember   Role = "member"
)

// User represents a bot user
type User struct {
	UserID    int64
	Role      Role
	CreatedAt time.Time
}

// RoleFor returns the role of userID given the configured operator id
func RoleFor(userID, operatorID int64) Role {
	if userID == operatorID {
		return RoleOperator
	}
	return RoleMember
}
