package model

import "github.com/go-faster/jx"

// Credentials is the body of POST /auth/login/dev.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the session credential extracted from a successful login.
// User is the full response body kept as an opaque record, the backend owns its
// shape and this client only stores and forwards it.
type LoginResult struct {
	User  jx.Raw
	Token string
}
