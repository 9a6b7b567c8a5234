package model

import "time"

// Role is the closed set of account roles. Role checks throughout the
// codebase go through this type rather than raw strings.
type Role string

const (
	RoleCitizen Role = "CITIZEN"
	RoleNGO     Role = "NGO"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleNGO, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole maps a wire value onto a Role. The ok result is false for
// anything outside the closed set, including the empty string.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	return role, role.Valid()
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips the credential material from a user record for wire
// responses. The password hash never leaves the repository/service layer.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthClaims is the verified identity attached to a request after the
// auth gate has validated the access token. It carries no more than the
// token itself encodes.
type AuthClaims struct {
	UserID string
	Role   Role
}
