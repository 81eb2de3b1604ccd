// Package token decodes the compact credential issued by the MDD server
// into its claims and judges expiry.
//
// Decoding is deliberately unverified: the signature segment is never
// checked client-side. The server remains the sole authority on token
// validity; the decoded claims are a UI convenience only and must never be
// treated as an authorization decision.
package token

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
)

var ErrMalformed = errors.New("malformed token")

// Claims is the decoded payload of a token. Subject carries the email,
// ExpiresAt the expiry in epoch seconds.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Some issuers pad the base64 payload; the decoder must not care.
var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode splits the raw token on '.', base64url-decodes the payload segment
// and parses it as JSON. Only the payload is touched; header and signature
// are opaque. Any malformation (segment count, base64, JSON) yields
// ErrMalformed, which callers must treat as "unauthenticated".
func Decode(raw string) (*Claims, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != 3 {
		return nil, ErrMalformed
	}

	payload, err := parser.DecodeSegment(segments[1])
	if err != nil {
		return nil, ErrMalformed
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, ErrMalformed
	}
	return claims, nil
}

// IsExpired reports whether the claims are expired at the given instant.
// A missing exp claim counts as expired (fail-closed), never as
// "never expires".
func (c *Claims) IsExpired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}

// User returns the identity exactly as the claims encode it.
func (c *Claims) User() models.User {
	return models.User{
		ID:       c.UserID,
		Username: c.Username,
		Email:    c.Subject,
	}
}
