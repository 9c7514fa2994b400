package marketplace

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/infrastructure/fetcher"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const (
	coreProgram = "Core#0"
	mfnProgram  = "MFN#1"
)

// SentinelPrice stands in for a listing without a competitive offer.
var SentinelPrice = decimal.NewFromInt(1) //nolint:gochecknoglobals

// otherFeeInfoMap keys summed on top of the storage fee.
var feeKeys = map[entity.FeeComponent]string{ //nolint:gochecknoglobals
	entity.FeeFulfillment:     "FulfillmentFee",
	entity.FeeFixedClosing:    "FixedClosingFee",
	entity.FeeReferral:        "ReferralFee",
	entity.FeeVariableClosing: "VariableClosingFee",
	entity.FeeDigitalServices: "DigitalServicesFee",
}

type SellerCentralOptions struct {
	Host        string
	CountryCode string
	Locale      string
	Currency    string
}

// SellerCentral is the client of the revenue calculator API. Every method
// reports missing data as false; callers drop the item.
type SellerCentral struct {
	fetcher Fetcher
	opts    SellerCentralOptions
	cookie  string
	now     func() time.Time
	log     *slog.Logger
}

func NewSellerCentral(fetcher Fetcher, opts SellerCentralOptions, cookie string, log *slog.Logger) *SellerCentral {
	opts.Host = strings.TrimRight(opts.Host, "/")

	return &SellerCentral{
		fetcher: fetcher,
		opts:    opts,
		cookie:  cookie,
		now:     time.Now,
		log:     log.With(slog.String(logx.FieldComponent, "seller-central")),
	}
}

// WithClock overrides the clock used to pick the seasonal storage fee.
func (c *SellerCentral) WithClock(now func() time.Time) *SellerCentral {
	c.now = now
	return c
}

func (c *SellerCentral) ProductData(ctx context.Context, asin string) (*entity.ProductData, bool) {
	query := url.Values{
		"searchKey":   {asin},
		"countryCode": {c.opts.CountryCode},
		"locale":      {c.opts.Locale},
	}

	resp, ok := c.get(ctx, "/rcpublic/productmatch?"+query.Encode())
	if !ok {
		return nil, false
	}

	var payload productMatchResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		c.malformed(ctx, "product data", asin, resp, err)
		return nil, false
	}

	if payload.Data == nil || payload.Data.OtherProducts == nil || len(payload.Data.OtherProducts.Products) == 0 {
		c.malformed(ctx, "product data", asin, resp, nil)
		return nil, false
	}

	product := payload.Data.OtherProducts.Products[0]
	if product.Title == nil || product.Link == nil || product.GL == nil || product.ImageURL == nil {
		c.malformed(ctx, "product data", asin, resp, nil)
		return nil, false
	}

	return &entity.ProductData{
		Title:         *product.Title,
		URL:           *product.Link,
		CategoryGroup: *product.GL,
		ImageURL:      *product.ImageURL,
	}, true
}

// Price returns the current buy box price. An empty data object means the
// listing has no competitive offer and yields SentinelPrice.
func (c *SellerCentral) Price(ctx context.Context, asin string) (decimal.Decimal, bool) {
	query := url.Values{
		"countryCode": {c.opts.CountryCode},
		"asin":        {asin},
		"fnsku":       {""},
		"searchType":  {"GENERAL"},
		"locale":      {c.opts.Locale},
	}

	resp, ok := c.get(ctx, "/rcpublic/getadditionalpronductinfo?"+query.Encode())
	if !ok {
		return decimal.Zero, false
	}

	var payload additionalInfoResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		c.malformed(ctx, "price", asin, resp, err)
		return decimal.Zero, false
	}

	raw := bytes.TrimSpace(payload.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		c.malformed(ctx, "price", asin, resp, nil)
		return decimal.Zero, false
	}

	var fields map[string]stdjson.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		c.malformed(ctx, "price", asin, resp, err)
		return decimal.Zero, false
	}

	if len(fields) == 0 {
		c.logger(ctx).Warn("no competitive offer, using sentinel price",
			slog.String(logx.FieldASIN, asin),
			slog.String("price", SentinelPrice.String()),
		)

		return SentinelPrice, true
	}

	var info additionalInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		c.malformed(ctx, "price", asin, resp, err)
		return decimal.Zero, false
	}

	if info.Price == nil || info.Price.Amount == nil {
		c.malformed(ctx, "price", asin, resp, nil)
		return decimal.Zero, false
	}

	return *info.Price.Amount, true
}

// Fees estimates the per-unit marketplace fees for selling at price.
func (c *SellerCentral) Fees(
	ctx context.Context,
	asin string,
	categoryGroup string,
	price decimal.Decimal,
) (entity.FeeBreakdown, bool) {
	query := url.Values{
		"countryCode": {c.opts.CountryCode},
		"locale":      {c.opts.Locale},
	}

	resp, ok := c.fetcher.PostJSON(ctx, c.request("/rcpublic/getfees?"+query.Encode()), c.feesRequest(asin, categoryGroup, price))
	if !ok {
		return nil, false
	}

	var payload feesResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		c.malformed(ctx, "fees", asin, resp, err)
		return nil, false
	}

	if payload.Data == nil {
		c.malformed(ctx, "fees", asin, resp, nil)
		return nil, false
	}

	core, ok := payload.Data.ProgramFeeResultMap[coreProgram]
	if !ok {
		c.malformed(ctx, "fees", asin, resp, nil)
		return nil, false
	}

	breakdown, ok := c.breakdown(core)
	if !ok {
		c.malformed(ctx, "fees", asin, resp, nil)
		return nil, false
	}

	return breakdown, true
}

func (c *SellerCentral) breakdown(core programFeeResult) (entity.FeeBreakdown, bool) {
	storage := core.PerUnitNonPeakStorageFee
	if isPeakSeason(c.now()) {
		storage = core.PerUnitPeakStorageFee
	}

	storageFee, ok := storage.value()
	if !ok {
		return nil, false
	}

	breakdown := entity.FeeBreakdown{entity.FeeStorage: storageFee}

	for component, key := range feeKeys {
		fee, found := core.OtherFeeInfoMap[key]
		if !found {
			return nil, false
		}

		amount, ok := fee.value()
		if !ok {
			return nil, false
		}

		breakdown[component] = amount
	}

	return breakdown, true
}

func (c *SellerCentral) feesRequest(asin, categoryGroup string, price decimal.Decimal) feesRequest {
	return feesRequest{
		CountryCode: c.opts.CountryCode,
		ItemInfo: feesItemInfo{
			ASIN:                asin,
			GLProductGroupName:  categoryGroup,
			PackageLength:       "0",
			PackageWidth:        "0",
			PackageHeight:       "0",
			PackageWeight:       "0",
			AFNPriceStr:         price.String(),
			MFNPriceStr:         price.String(),
			MFNShippingPriceStr: "0",
			Currency:            c.opts.Currency,
			IsNewDefined:        "false",
		},
		ProgramIDList:   []string{coreProgram, mfnProgram},
		ProgramParamMap: map[string]any{},
	}
}

func (c *SellerCentral) get(ctx context.Context, path string) (*fetcher.Response, bool) {
	return c.fetcher.Get(ctx, c.request(path))
}

func (c *SellerCentral) request(path string) fetcher.Request {
	return fetcher.Request{
		URL:     c.opts.Host + path,
		Referer: c.opts.Host + "/revcalpublic?mons_sel_locale=" + strings.ReplaceAll(c.opts.Locale, "-", "_"),
		Cookie:  c.cookie,
		API:     true,
	}
}

func (c *SellerCentral) malformed(ctx context.Context, what, asin string, resp *fetcher.Response, err error) {
	attrs := []any{
		slog.String(logx.FieldASIN, asin),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, truncate(resp.Body, 512)),
	}
	if err != nil {
		attrs = append(attrs, logx.Error(err))
	}

	c.logger(ctx).Warn("unexpected "+what+" payload", attrs...)
}

func (c *SellerCentral) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, c.log)
}

// Октябрь-декабрь: пиковый тариф хранения.
func isPeakSeason(t time.Time) bool {
	return t.Month() >= time.October
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		body = body[:n]
	}

	return string(body)
}
