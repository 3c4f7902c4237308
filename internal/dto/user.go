package dto

import "time"

// RegisterRequest is the JSON body for POST /auth/createUser.
// Password is deliberately not trimmed: leading or trailing spaces are part
// of the credential.
type RegisterRequest struct {
	Name     TrimmedString `json:"name" binding:"required,min=4,max=120"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=8"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned after a successful register or login.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// UserResponse is the user record minus the password hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
