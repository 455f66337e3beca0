package service

import "github.com/golang-jwt/jwt/v4"

// UserCredentialClaims is what the external identity provider signs into the
// session token. UserID is the stable external identity every record keys on.
type UserCredentialClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
