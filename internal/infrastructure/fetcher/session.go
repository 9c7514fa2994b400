package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tlsclient "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

type SessionConfig struct {
	Timeout time.Duration
	Proxy   string
}

// NewTLSSessionFactory builds sessions that present a Chrome TLS and HTTP/2
// fingerprint, optionally through a proxy.
func NewTLSSessionFactory(cfg SessionConfig) SessionFactory {
	return func() (Session, error) {
		opts := []tlsclient.HttpClientOption{
			tlsclient.WithTimeoutMilliseconds(int(cfg.Timeout.Milliseconds())),
			tlsclient.WithClientProfile(profiles.Chrome_131),
			tlsclient.WithRandomTLSExtensionOrder(),
			tlsclient.WithCookieJar(tlsclient.NewCookieJar()),
		}

		if cfg.Proxy != "" {
			opts = append(opts, tlsclient.WithProxyUrl(cfg.Proxy))
		}

		client, err := tlsclient.NewHttpClient(tlsclient.NewNoopLogger(), opts...)
		if err != nil {
			return nil, fmt.Errorf("tlsclient.NewHttpClient: %w", err)
		}

		return &tlsSession{client: client}, nil
	}
}

type tlsSession struct {
	client tlsclient.HttpClient
}

func (s *tlsSession) Do(ctx context.Context, req Request) (*Response, error) {
	var body io.Reader = fhttp.NoBody
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := fhttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("fhttp.NewRequestWithContext: %w", err)
	}

	httpReq.Header = buildHeaders(req)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

func (s *tlsSession) Close() {
	s.client.CloseIdleConnections()
}

func buildHeaders(req Request) fhttp.Header {
	accept := "*/*"
	if req.API {
		accept = "application/json"
	}

	header := fhttp.Header{
		"accept":          {accept},
		"accept-language": {"en-GB,en;q=0.9"},
		"user-agent":      {userAgent},
		fhttp.HeaderOrderKey: {
			"accept",
			"accept-language",
			"content-type",
			"cookie",
			"referer",
			"user-agent",
		},
	}

	if req.Cookie != "" {
		header["cookie"] = []string{req.Cookie}
	}

	if req.Referer != "" {
		header["referer"] = []string{req.Referer}
	}

	if len(req.Body) > 0 {
		header["content-type"] = []string{"application/json"}
	}

	return header
}
