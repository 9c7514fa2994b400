package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildHeaders(t *testing.T) {
	rq := require.New(t)

	header := buildHeaders(Request{
		Referer: "https://www.amazon.fr/",
		Cookie:  "session-id=262-1",
	})

	rq.Equal([]string{"*/*"}, header["accept"])
	rq.Equal([]string{"session-id=262-1"}, header["cookie"])
	rq.Equal([]string{"https://www.amazon.fr/"}, header["referer"])
	rq.NotContains(header, "content-type")

	header = buildHeaders(Request{API: true, Body: []byte(`{}`)})

	rq.Equal([]string{"application/json"}, header["accept"])
	rq.Equal([]string{"application/json"}, header["content-type"])
	rq.NotContains(header, "cookie")
}

func TestTLSSessionSubSecondTimeout(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	session, err := NewTLSSessionFactory(SessionConfig{Timeout: 300 * time.Millisecond})()
	rq.NoError(err)
	defer session.Close()

	start := time.Now()
	_, err = session.Do(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
	rq.Error(err)
	rq.Less(time.Since(start), 2*time.Second)
}
