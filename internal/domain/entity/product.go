package entity

import "github.com/shopspring/decimal"

type FeeComponent string

const (
	FeeStorage         FeeComponent = "storage"
	FeeFulfillment     FeeComponent = "fulfillment"
	FeeFixedClosing    FeeComponent = "fixed_closing"
	FeeReferral        FeeComponent = "referral"
	FeeVariableClosing FeeComponent = "variable_closing"
	FeeDigitalServices FeeComponent = "digital_services"
)

// FeeComponents lists every component a complete breakdown carries.
var FeeComponents = []FeeComponent{ //nolint:gochecknoglobals
	FeeStorage,
	FeeFulfillment,
	FeeFixedClosing,
	FeeReferral,
	FeeVariableClosing,
	FeeDigitalServices,
}

type FeeBreakdown map[FeeComponent]decimal.Decimal

// Total sums all components, rounded to cents.
func (f FeeBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range f {
		total = total.Add(amount)
	}

	return total.Round(2)
}

// ProductData is the marketplace metadata of a resolved product.
type ProductData struct {
	Title         string
	URL           string
	CategoryGroup string
	ImageURL      string
}

type ProductSnapshot struct {
	ASIN string
	ProductData
	Price decimal.Decimal
	Fees  FeeBreakdown
}

type DemandEstimate struct {
	ASIN                  string
	EstimatedMonthlySales int
}
