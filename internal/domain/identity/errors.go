package identity

import "errors"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)
