// Package marketplace talks to the retail marketplace: the public search page
// used to resolve a universal code into an ASIN, and the internal revenue
// calculator API used to enrich that ASIN with metadata, price and fees.
package marketplace

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"fba_scanner/internal/infrastructure/fetcher"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const asinLength = 10

type Fetcher interface {
	Get(ctx context.Context, req fetcher.Request) (*fetcher.Response, bool)
	PostJSON(ctx context.Context, req fetcher.Request, payload any) (*fetcher.Response, bool)
}
