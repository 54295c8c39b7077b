package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT session token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
// UserID is the parsed "sub" claim, populated on both issue and verify.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
