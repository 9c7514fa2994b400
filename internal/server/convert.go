package server

import (
	"time"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/rest"
)

func newRESTDeal(deal entity.Deal) rest.Deal {
	result := rest.Deal{
		Ean:            deal.EAN,
		Asin:           deal.ASIN,
		Name:           deal.Name,
		SupplierCost:   deal.SupplierCost.StringFixed(2),
		AmazonPrice:    deal.Price.StringFixed(2),
		Fees:           deal.Fees.StringFixed(2),
		Profit:         deal.Profit.StringFixed(2),
		Roi:            deal.ROI.StringFixed(2),
		EstimatedSales: deal.EstimatedSales,
		AmazonLink:     deal.MarketplaceLink,
		SupplierLink:   deal.SupplierLink,
		SasLink:        deal.LookupLink,
		ImageURL:       deal.ImageURL,
		Posted:         deal.Posted,
		CreatedAt:      deal.CreatedAt.UTC().Format(time.RFC3339),
	}

	if deal.PostedAt != nil {
		postedAt := deal.PostedAt.UTC().Format(time.RFC3339)
		result.PostedAt = &postedAt
	}

	return result
}

func newDomainDealKey(key rest.DealKey) entity.DealKey {
	return entity.DealKey{
		EAN:  key.Ean,
		ASIN: key.Asin,
	}
}
