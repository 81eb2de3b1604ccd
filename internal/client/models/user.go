// Package models defines the data transfer objects exchanged with the MDD
// REST API and the values the client keeps in memory. All types are plain
// values; JSON tags follow the wire names used by the server.
package models

// User is the application's view of an authenticated account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login. Identifier may be
// either a username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/users/{id}. Nil fields are
// omitted and left unchanged by the server.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AuthResponse is returned by both register and login. Token carries the
// signed credential; the identity fields duplicate what the token claims
// and are kept for display only.
type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	Message  string `json:"message"`
}

// MessageResponse is the generic confirmation body used by the server.
type MessageResponse struct {
	Message string `json:"message"`
}
