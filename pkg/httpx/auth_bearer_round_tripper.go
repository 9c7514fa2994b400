package httpx

import (
	"fmt"
	"net/http"
)

type tokenSource interface {
	BearerToken() string
}

// StaticToken is a token that never expires. Empty means anonymous.
type StaticToken string

func (t StaticToken) BearerToken() string {
	return string(t)
}

// AuthBearerRoundTripper adds an Authorization header to every request when
// the token source has a token.
type AuthBearerRoundTripper struct {
	next   http.RoundTripper
	tokens tokenSource
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	tokens tokenSource,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:   next,
		tokens: tokens,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token := rt.tokens.BearerToken()
	if token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
