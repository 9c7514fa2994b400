package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"fba_scanner/pkg/httpx"
)

func TestAuthBearerRoundTripper(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		token  httpx.StaticToken
		header string
	}{
		{
			name:   "With token",
			token:  "ghp_secret",
			header: "Bearer ghp_secret",
		},
		{
			name:   "Anonymous",
			token:  "",
			header: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			var got string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			client := &http.Client{Transport: httpx.NewAuthBearerRoundTripper(http.DefaultTransport, tc.token)}

			req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
			rq.NoError(err)

			resp, err := client.Do(req)
			rq.NoError(err)
			rq.NoError(resp.Body.Close())

			rq.Equal(tc.header, got)
			rq.Empty(req.Header.Get("Authorization"))
		})
	}
}
