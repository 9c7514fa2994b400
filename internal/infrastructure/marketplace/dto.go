package marketplace

import (
	stdjson "encoding/json"

	"github.com/shopspring/decimal"
)

type productMatchResponse struct {
	Data *struct {
		OtherProducts *struct {
			Products []productMatch `json:"products"`
		} `json:"otherProducts"`
	} `json:"data"`
}

type productMatch struct {
	Title    *string `json:"title"`
	Link     *string `json:"link"`
	GL       *string `json:"gl"`
	ImageURL *string `json:"imageUrl"`
}

type additionalInfoResponse struct {
	Data stdjson.RawMessage `json:"data"`
}

type additionalInfo struct {
	Price *amount `json:"price"`
}

type amount struct {
	Amount *decimal.Decimal `json:"amount"`
}

type feeTotal struct {
	Total *amount `json:"total"`
}

type feesRequest struct {
	CountryCode     string         `json:"countryCode"`
	ItemInfo        feesItemInfo   `json:"itemInfo"`
	ProgramIDList   []string       `json:"programIdList"`
	ProgramParamMap map[string]any `json:"programParamMap"`
}

type feesItemInfo struct {
	ASIN                string `json:"asin"`
	GLProductGroupName  string `json:"glProductGroupName"`
	PackageLength       string `json:"packageLength"`
	PackageWidth        string `json:"packageWidth"`
	PackageHeight       string `json:"packageHeight"`
	DimensionUnit       string `json:"dimensionUnit"`
	PackageWeight       string `json:"packageWeight"`
	WeightUnit          string `json:"weightUnit"`
	AFNPriceStr         string `json:"afnPriceStr"`
	MFNPriceStr         string `json:"mfnPriceStr"`
	MFNShippingPriceStr string `json:"mfnShippingPriceStr"`
	Currency            string `json:"currency"`
	IsNewDefined        string `json:"isNewDefined"`
}

type feesResponse struct {
	Data *struct {
		ProgramFeeResultMap map[string]programFeeResult `json:"programFeeResultMap"`
	} `json:"data"`
}

type programFeeResult struct {
	PerUnitPeakStorageFee    *feeTotal           `json:"perUnitPeakStorageFee"`
	PerUnitNonPeakStorageFee *feeTotal           `json:"perUnitNonPeakStorageFee"`
	OtherFeeInfoMap          map[string]feeTotal `json:"otherFeeInfoMap"`
}

func (f *feeTotal) value() (decimal.Decimal, bool) {
	if f == nil || f.Total == nil || f.Total.Amount == nil {
		return decimal.Zero, false
	}

	return *f.Total.Amount, true
}
