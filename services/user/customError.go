package user

import "errors"

// ErrEmailTaken signals that signup was attempted with an email that
// already has an account.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials signals a failed login. The message is shared
// for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")
