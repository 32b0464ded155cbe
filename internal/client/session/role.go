// Package session derives a typed identity from the stored bearer
// credential and gates navigation on it. It is the single source of truth
// for "who is logged in and with what role".
package session

import "strings"

// Role is the closed set of special roles a token may carry. The decoded
// role is advisory for UI gating only; the server remains the authority on
// every mutating endpoint.
type Role string

const (
	// RoleNone marks a basic authenticated user with no special role.
	RoleNone Role = ""

	RoleUser         Role = "user"
	RoleUserAdmin    Role = "user_admin"
	RoleArticleAdmin Role = "article_admin"
	RoleModerator    Role = "moderator"
	RoleAnalyst      Role = "analyst"
)

// ParseRole normalizes a raw role string to its canonical lowercase form.
// Matching is case-insensitive; unknown or empty values map to RoleNone so
// comparisons never happen on unnormalized input.
func ParseRole(s string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleUserAdmin, RoleArticleAdmin, RoleModerator, RoleAnalyst:
		return r
	default:
		return RoleNone
	}
}
