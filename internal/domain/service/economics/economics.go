// Package economics holds the pure profitability and demand rules applied to a
// fully enriched catalog entry.
package economics

import "github.com/shopspring/decimal"

var (
	// VATMultiplier converts a supplier net price into landed cost.
	VATMultiplier = decimal.RequireFromString("1.20") //nolint:gochecknoglobals
	hundred       = decimal.NewFromInt(100)           //nolint:gochecknoglobals
)

type Thresholds struct {
	MinROI          decimal.Decimal
	MinProfit       decimal.Decimal
	MinMonthlySales int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MinROI:          decimal.NewFromInt(25),
		MinProfit:       decimal.NewFromInt(1),
		MinMonthlySales: 5,
	}
}

type Result struct {
	SupplierCost decimal.Decimal
	Profit       decimal.Decimal
	ROI          decimal.Decimal
}

// SupplierCost returns the landed cost of one unit.
func SupplierCost(supplierPrice decimal.Decimal) decimal.Decimal {
	return supplierPrice.Mul(VATMultiplier)
}

// Evaluate computes profit and ROI (percent) for one unit sold at price.
func Evaluate(supplierPrice, price, fees decimal.Decimal) Result {
	cost := SupplierCost(supplierPrice)
	profit := price.Sub(fees).Sub(cost)

	roi := decimal.Zero
	if cost.IsPositive() {
		roi = profit.Div(cost).Mul(hundred)
	}

	return Result{
		SupplierCost: cost,
		Profit:       profit,
		ROI:          roi,
	}
}

func (t Thresholds) Profitable(r Result) bool {
	if !r.SupplierCost.IsPositive() {
		return false
	}

	return r.ROI.GreaterThanOrEqual(t.MinROI) && r.Profit.GreaterThanOrEqual(t.MinProfit)
}

// HasDemand treats an unknown estimate as no demand.
func (t Thresholds) HasDemand(monthlySales int, known bool) bool {
	return known && monthlySales >= t.MinMonthlySales
}
