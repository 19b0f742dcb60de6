// Package role orders the account roles for permission checks. Every
// registered account is at least RoleUser; staff accounts created through
// admin setup are RoleAdmin and may manage tags and other users.
package role

import (
	"math"

	"github.com/iceadmin/foodgram/internal/database"
)

// Role levels compare with <, so a gate like "at least user" admits
// admins too.
type Role int

const (
	RoleAdmin   Role = 200
	RoleUser    Role = 100
	RoleUnknown Role = math.MinInt
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "unknown"
	}
}

func DBToRole(role database.Role) Role {
	switch role {
	case database.RoleAdmin:
		return RoleAdmin
	case database.RoleUser:
		return RoleUser
	default:
		return RoleUnknown
	}
}

func ToRole(role string) Role {
	switch role {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleUnknown
	}
}
