package models

import (
	"fmt"

	"github.com/google/uuid"
)

// User is an account record as returned by the gateway. Password is only
// ever sent on registration and never echoed back.
type User struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Nick     string    `json:"nick"`
	Role     string    `json:"role,omitempty"`
	Birthday string    `json:"birthday,omitempty"`
}

func (u User) String() string {
	return fmt.Sprintf("User(ID: %s, Email: %s, Nick: %s, Role: %s)",
		u.Id.String(), u.Email, u.Nick, u.Role)
}

// RegisterRequest is the body of POST /register. The id is generated
// client-side.
type RegisterRequest struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Nick     string    `json:"nick"`
	Birthday string    `json:"birthday"`
}

// LoginRequest is the body of POST /login. The response body is the raw
// credential string, not JSON.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
