package types

import "github.com/golang-jwt/jwt/v5"

// Role of the authenticated caller. Tokens are issued by the external
// auth service; this service only reads them.
type Role string

const (
	RoleVendor      Role = "vendor"
	RoleParticipant Role = "participant"
)

type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// Actor identifies who is performing a core operation. It is passed
// explicitly into every service call instead of being read from
// ambient request state.
type Actor struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

func (a Actor) IsVendor() bool {
	return a.Role == RoleVendor
}

func (a Actor) IsParticipant() bool {
	return a.Role == RoleParticipant
}
