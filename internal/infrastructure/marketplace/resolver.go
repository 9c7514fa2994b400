package marketplace

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"fba_scanner/internal/infrastructure/fetcher"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const (
	searchResultSelector = `div[data-component-type="s-search-result"]`
	// Sponsored/annotation rows carry this exact class list.
	annotationRowSelector = `div[class="a-row a-spacing-micro"]`
)

// Resolver maps an EAN to the first plausible ASIN listed by the public
// keyword search. Markup drift, blocks and empty results all end up as
// "not found".
type Resolver struct {
	fetcher Fetcher
	host    string
	cookie  string
	log     *slog.Logger
}

func NewResolver(fetcher Fetcher, host, cookie string, log *slog.Logger) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		host:    strings.TrimRight(host, "/"),
		cookie:  cookie,
		log:     log.With(slog.String(logx.FieldComponent, "resolver")),
	}
}

func (r *Resolver) Resolve(ctx context.Context, ean string) (string, bool) {
	resp, ok := r.fetcher.Get(ctx, r.searchRequest(ean))
	if !ok {
		return "", false
	}

	if resp.StatusCode != http.StatusOK {
		r.logger(ctx).Warn("search blocked",
			slog.String(logx.FieldEAN, ean),
			slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		)

		return "", false
	}

	asin, ok := FirstASIN(resp.Body)
	if !ok {
		r.logger(ctx).Debug("no asin in search results", slog.String(logx.FieldEAN, ean))
	}

	return asin, ok
}

func (r *Resolver) searchRequest(ean string) fetcher.Request {
	return fetcher.Request{
		URL:     r.host + "/s?" + url.Values{"k": {ean}}.Encode(),
		Referer: r.host + "/",
		Cookie:  r.cookie,
	}
}

func (r *Resolver) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, r.log)
}

// FirstASIN returns the first 10-character data-asin among organic search
// results.
func FirstASIN(page []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	var asin string

	doc.Find(searchResultSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Find(annotationRowSelector).Length() > 0 {
			return true
		}

		candidate, exists := s.Attr("data-asin")
		if exists && len(candidate) == asinLength {
			asin = candidate
			return false
		}

		return true
	})

	return asin, asin != ""
}
