// Package notifier publishes saved deals to chat channels.
package notifier

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	colorExcellent = 0x00FF00
	colorGood      = 0x2ECC71
	colorFair      = 0xF1C40F
	colorPoor      = 0xE74C3C
)

//nolint:gochecknoglobals
var (
	roiExcellent = decimal.NewFromInt(60)
	roiGood      = decimal.NewFromInt(40)
	roiFair      = decimal.NewFromInt(25)
)

// ROIColor grades a deal for the embed side bar.
func ROIColor(roi decimal.Decimal) int {
	switch {
	case roi.GreaterThanOrEqual(roiExcellent):
		return colorExcellent
	case roi.GreaterThanOrEqual(roiGood):
		return colorGood
	case roi.GreaterThanOrEqual(roiFair):
		return colorFair
	default:
		return colorPoor
	}
}

func euro(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
