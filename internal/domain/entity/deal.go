package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealKey identifies one arbitrage opportunity.
type DealKey struct {
	EAN  string `json:"ean" validate:"required"`
	ASIN string `json:"asin" validate:"required,len=10"`
}

type Deal struct {
	EAN            string
	ASIN           string
	Name           string
	SupplierCost   decimal.Decimal
	Price          decimal.Decimal
	Fees           decimal.Decimal
	Profit         decimal.Decimal
	ROI            decimal.Decimal
	EstimatedSales int

	MarketplaceLink string
	SupplierLink    string
	LookupLink      string
	ImageURL        string

	// Posting state belongs to the distribution side.
	Posted    bool
	PostedAt  *time.Time
	CreatedAt time.Time
}

func (d Deal) Key() DealKey {
	return DealKey{EAN: d.EAN, ASIN: d.ASIN}
}
