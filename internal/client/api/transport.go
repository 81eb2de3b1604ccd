package api

import (
	"net/http"

	"github.com/google/uuid"
)

// TokenProvider yields the current raw credential, or "" when none is held.
// The session store satisfies this.
type TokenProvider interface {
	Token() string
}

// authRoundTripper attaches the bearer credential to every outgoing request.
// It has no awareness of which endpoints need auth: if a token is present it
// is attached, otherwise the request passes through untouched.
type authRoundTripper struct {
	next   http.RoundTripper
	tokens TokenProvider
}

// RoundTrip honors the http.RoundTripper contract: the incoming request is
// never mutated, headers are set on a clone.
func (rt *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	t := rt.tokens.Token()
	if t == "" {
		return rt.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t)
	return rt.next.RoundTrip(clone)
}

// requestIDRoundTripper stamps a fresh X-Request-Id on a clone of every
// request so client and server logs can be correlated.
type requestIDRoundTripper struct {
	next http.RoundTripper
}

func (rt *requestIDRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-Id", uuid.NewString())
	return rt.next.RoundTrip(clone)
}

// newTransport composes the outbound middleware chain around base.
func newTransport(base http.RoundTripper, tokens TokenProvider) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &requestIDRoundTripper{
		next: &authRoundTripper{next: base, tokens: tokens},
	}
}
