package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the payload of the session token stored in the auth cookie.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	TokenVersion int    `json:"tokenVersion"`
}
