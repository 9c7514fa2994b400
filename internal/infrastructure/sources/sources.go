// Package sources downloads the per-run inputs: the supplier catalog and
// the session credentials.
package sources

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/httpx"
	"fba_scanner/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const DefaultTimeout = 10 * time.Second

type Options struct {
	CatalogURL     string
	CredentialsURL string
	Token          string
	Timeout        time.Duration
	LogFieldMaxLen int
}

type Client struct {
	client         *http.Client
	catalogURL     string
	credentialsURL string
	validate       *validator.Validate
	log            *slog.Logger
}

func NewClient(opts Options, log *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAuthBearerRoundTripper(http.DefaultTransport, httpx.StaticToken(opts.Token)),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
	)

	return &Client{
		client:         &http.Client{Transport: transport, Timeout: opts.Timeout},
		catalogURL:     opts.CatalogURL,
		credentialsURL: opts.CredentialsURL,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		log:            log.With(slog.String(logx.FieldComponent, "sources")),
	}
}

type catalogEntryDTO struct {
	GTIN          string `json:"product_gtin" validate:"required"`
	SupplierPrice string `json:"supplier_price" validate:"required,numeric"`
	Link          string `json:"product_link" validate:"required"`
	Name          string `json:"product_name"`
}

// Catalog returns the supplier feed. Any failure yields an empty catalog;
// entries that do not validate are skipped.
func (c *Client) Catalog(ctx context.Context) []entity.CatalogEntry {
	log := c.logger(ctx)

	body, err := c.get(ctx, c.catalogURL)
	if err != nil {
		log.Error("fetch catalog", logx.Error(err))
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		log.Error("decode catalog", logx.Error(err))
		return nil
	}

	entries := make([]entity.CatalogEntry, 0, len(raw))

	for i, item := range raw {
		entry, err := c.toEntry(item)
		if err != nil {
			log.Warn("skip catalog entry", slog.Int("index", i), logx.Error(err))
			continue
		}

		entries = append(entries, entry)
	}

	log.Info("catalog fetched", slog.Int("entries", len(entries)), slog.Int("skipped", len(raw)-len(entries)))

	return entries
}

// Credentials are required for a run; the caller stops on error.
func (c *Client) Credentials(ctx context.Context) (entity.Credentials, error) {
	body, err := c.get(ctx, c.credentialsURL)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("fetch credentials: %w", err)
	}

	var creds entity.Credentials
	if err := json.Unmarshal(body, &creds); err != nil {
		return entity.Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}

	if err := c.validate.Struct(creds); err != nil {
		return entity.Credentials{}, fmt.Errorf("validate credentials: %w", err)
	}

	c.logger(ctx).Info("credentials fetched", slog.Int("lookup-cookies", len(creds.Lookup)))

	return creds, nil
}

// toEntry accepts codes and prices both as JSON numbers and strings.
func (c *Client) toEntry(item map[string]any) (entity.CatalogEntry, error) {
	dto := catalogEntryDTO{
		GTIN:          stringify(item["product_gtin"]),
		SupplierPrice: stringify(item["supplier_price"]),
		Link:          stringify(item["product_link"]),
		Name:          stringify(item["product_name"]),
	}

	if err := c.validate.Struct(dto); err != nil {
		return entity.CatalogEntry{}, fmt.Errorf("validate: %w", err)
	}

	price, err := decimal.NewFromString(dto.SupplierPrice)
	if err != nil {
		return entity.CatalogEntry{}, fmt.Errorf("supplier_price: %w", err)
	}

	return entity.CatalogEntry{
		EAN:           dto.GTIN,
		SupplierPrice: price,
		SupplierLink:  dto.Link,
		Name:          dto.Name,
	}, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return body, nil
}

func (c *Client) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, c.log)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
