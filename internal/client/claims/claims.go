// Package claims reads the claims carried by a marketplace access token.
//
// Tokens are decoded without verifying their signature: the client has no
// key and uses the result for display only. Authorization decisions stay on
// the server.
package claims

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("no token")

// Claims is the token payload: the standard claims plus the user's name and role.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Parse decodes token without verifying it.
func Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	c := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return c, nil
}

// Expired reports whether the token carries an expiry at or before now.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time)
}

// Name returns the best human label for the token's owner.
func (c *Claims) Name() string {
	switch {
	case c.Username != "":
		return c.Username
	case c.Subject != "":
		return c.Subject
	default:
		return "unknown"
	}
}

func (c *Claims) String() string {
	s := c.Name()
	if c.Role != "" {
		s += " (" + c.Role + ")"
	}
	if c.ExpiresAt != nil {
		s += ", expires " + c.ExpiresAt.Time.Local().Format(time.RFC1123)
	}
	return s
}
