package response_models

import "strings"

// AuthUser is the normalized identity resolved by the auth gate, sourced
// from the identity provider's claims. It is never persisted locally.
type AuthUser struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"is_admin"`
}

// NewAuthUser derives the admin flag from the role list, matching on
// "admin" case-insensitively.
func NewAuthUser(id, email string, roles []string) AuthUser {
	if roles == nil {
		roles = []string{}
	}
	isAdmin := false
	for _, r := range roles {
		if strings.EqualFold(r, "admin") {
			isAdmin = true
			break
		}
	}
	return AuthUser{ID: id, Email: email, Roles: roles, IsAdmin: isAdmin}
}

type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresIn int      `json:"expires_in,omitempty"`
	User      AuthUser `json:"user"`
}
