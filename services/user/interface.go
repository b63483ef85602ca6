package user

import "mensa/models"

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService defines account management operations.
type UserService interface {
	// Register creates a new account. The email must not be taken.
	Register(name, email, password string) error
	// Authenticate verifies credentials and issues a bearer token.
	Authenticate(email, password string) (*AuthResponse, error)
	// ResetPassword replaces the password for the account with the given
	// email.
	ResetPassword(email, newPassword string) error
	// RevokeToken invalidates a previously issued token.
	RevokeToken(token string) error
	// GetByID fetches a user record.
	GetByID(id string) (*models.User, error)
}
