package marketplace_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/internal/infrastructure/fetcher"
	"fba_scanner/internal/infrastructure/marketplace"
)

const feesPayload = `{"data":{"programFeeResultMap":{
  "Core#0":{
    "perUnitPeakStorageFee":{"total":{"amount":0.90,"currency":"EUR"}},
    "perUnitNonPeakStorageFee":{"total":{"amount":0.30,"currency":"EUR"}},
    "otherFeeInfoMap":{
      "FulfillmentFee":{"total":{"amount":3.20}},
      "FixedClosingFee":{"total":{"amount":0}},
      "ReferralFee":{"total":{"amount":3.00}},
      "VariableClosingFee":{"total":{"amount":0}},
      "DigitalServicesFee":{"total":{"amount":0.105}}
    }
  },
  "MFN#1":{}
}}}`

func newSellerCentral(f marketplace.Fetcher, now time.Time) *marketplace.SellerCentral {
	return marketplace.NewSellerCentral(f, marketplace.SellerCentralOptions{
		Host:        "https://sellercentral-europe.amazon.com",
		CountryCode: "FR",
		Locale:      "en-GB",
		Currency:    "EUR",
	}, "at-main=1", discardLogger()).WithClock(func() time.Time { return now })
}

func TestSellerCentralProductData(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		ok      bool
		product *entity.ProductData
	}{
		{
			name: "First product",
			body: `{"data":{"otherProducts":{"products":[
				{"title":"Widget","link":"https://www.amazon.fr/dp/B08N5WRWNW","gl":"gl_toy","imageUrl":"https://m.media/1.jpg"},
				{"title":"Other","link":"x","gl":"gl_book","imageUrl":"y"}]}}}`,
			ok: true,
			product: &entity.ProductData{
				Title:         "Widget",
				URL:           "https://www.amazon.fr/dp/B08N5WRWNW",
				CategoryGroup: "gl_toy",
				ImageURL:      "https://m.media/1.jpg",
			},
		},
		{
			name: "Missing field",
			body: `{"data":{"otherProducts":{"products":[{"title":"Widget","link":"x","gl":"gl_toy"}]}}}`,
		},
		{
			name: "No products",
			body: `{"data":{"otherProducts":{"products":[]}}}`,
		},
		{
			name: "No data",
			body: `{"error":"denied"}`,
		},
		{
			name: "Not JSON",
			body: `<html>sign in</html>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			f := &fakeFetcher{handle: respond(http.StatusOK, tc.body)}

			product, ok := newSellerCentral(f, time.Now()).ProductData(context.Background(), "B08N5WRWNW")
			rq.Equal(tc.ok, ok)
			rq.Equal(tc.product, product)

			req := f.Calls()[0].Request
			rq.True(req.API)
			rq.Equal("at-main=1", req.Cookie)
			rq.True(strings.HasPrefix(req.URL, "https://sellercentral-europe.amazon.com/rcpublic/productmatch?"))
			rq.Contains(req.URL, "searchKey=B08N5WRWNW")
			rq.Contains(req.URL, "countryCode=FR")
			rq.Equal("https://sellercentral-europe.amazon.com/revcalpublic?mons_sel_locale=en_GB", req.Referer)
		})
	}
}

func TestSellerCentralPrice(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		body  string
		ok    bool
		price string
	}{
		{
			name:  "Buy box price",
			body:  `{"data":{"price":{"amount":24.99,"currency":"EUR"}}}`,
			ok:    true,
			price: "24.99",
		},
		{
			name:  "Empty data is the sentinel",
			body:  `{"data":{}}`,
			ok:    true,
			price: "1",
		},
		{
			name:  "Null data",
			body:  `{"data":null}`,
			price: "0",
		},
		{
			name:  "Missing data",
			body:  `{}`,
			price: "0",
		},
		{
			name:  "Data is not an object",
			body:  `{"data":[24.99]}`,
			price: "0",
		},
		{
			name:  "Data without price",
			body:  `{"data":{"rank":12}}`,
			price: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			f := &fakeFetcher{handle: respond(http.StatusOK, tc.body)}

			price, ok := newSellerCentral(f, time.Now()).Price(context.Background(), "B08N5WRWNW")
			rq.Equal(tc.ok, ok)
			rq.True(decimal.RequireFromString(tc.price).Equal(price), price.String())
		})
	}
}

func TestSellerCentralFees(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		now     time.Time
		body    string
		ok      bool
		storage string
		total   string
	}{
		{
			name:    "Off season storage",
			now:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			body:    feesPayload,
			ok:      true,
			storage: "0.3",
			total:   "6.61",
		},
		{
			name:    "Peak season storage",
			now:     time.Date(2026, time.November, 20, 0, 0, 0, 0, time.UTC),
			body:    feesPayload,
			ok:      true,
			storage: "0.9",
			total:   "7.21",
		},
		{
			name: "Missing component",
			now:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			body: strings.Replace(feesPayload, `"ReferralFee"`, `"Referral"`, 1),
		},
		{
			name: "No core programme",
			now:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			body: `{"data":{"programFeeResultMap":{"MFN#1":{}}}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			f := &fakeFetcher{handle: respond(http.StatusOK, tc.body)}

			fees, ok := newSellerCentral(f, tc.now).Fees(
				context.Background(), "B08N5WRWNW", "gl_toy", decimal.RequireFromString("24.99"),
			)
			rq.Equal(tc.ok, ok)

			if !tc.ok {
				rq.Nil(fees)
				return
			}

			rq.Len(fees, len(entity.FeeComponents))
			rq.True(decimal.RequireFromString(tc.storage).Equal(fees[entity.FeeStorage]))
			rq.True(decimal.RequireFromString(tc.total).Equal(fees.Total()), fees.Total().String())
		})
	}
}

func TestSellerCentralFeesRequest(t *testing.T) {
	rq := require.New(t)

	f := &fakeFetcher{handle: func(fetcher.Request) (*fetcher.Response, bool) {
		return &fetcher.Response{StatusCode: http.StatusOK, Body: []byte(feesPayload)}, true
	}}

	_, ok := newSellerCentral(f, time.Now()).Fees(
		context.Background(), "B08N5WRWNW", "gl_toy", decimal.RequireFromString("24.99"),
	)
	rq.True(ok)

	calls := f.Calls()
	rq.Len(calls, 1)
	rq.Equal("https://sellercentral-europe.amazon.com/rcpublic/getfees?countryCode=FR&locale=en-GB", calls[0].Request.URL)

	body, err := jsoniter.Marshal(calls[0].Payload)
	rq.NoError(err)
	rq.JSONEq(`{
		"countryCode":"FR",
		"itemInfo":{
			"asin":"B08N5WRWNW",
			"glProductGroupName":"gl_toy",
			"packageLength":"0",
			"packageWidth":"0",
			"packageHeight":"0",
			"dimensionUnit":"",
			"packageWeight":"0",
			"weightUnit":"",
			"afnPriceStr":"24.99",
			"mfnPriceStr":"24.99",
			"mfnShippingPriceStr":"0",
			"currency":"EUR",
			"isNewDefined":"false"
		},
		"programIdList":["Core#0","MFN#1"],
		"programParamMap":{}
	}`, string(body))
}
