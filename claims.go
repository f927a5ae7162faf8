package tasks

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the decoded identity attached to authenticated requests.
type AuthClaims interface {
	Subject() string
	UserID() int64
	Expires() time.Time
	IssuedAt() time.Time
}

// TokenClaims is the concrete claim set carried by issued tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	UID int64 `json:"uid,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*TokenClaims)(nil)

// Subject returns the subject claim
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the account id the token was issued for. It falls back
// to the subject claim for tokens minted without a uid field.
func (c *TokenClaims) UserID() int64 {
	if c.UID != 0 {
		return c.UID
	}
	id, _ := strconv.ParseInt(c.RegisteredClaims.Subject, 10, 64)
	return id
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
