package persistence

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"fba_scanner/internal/domain/entity"
)

const dealColumns = `ean, asin, name, supplier_cost, amazon_price, fees, profit, roi, estimated_sales,
	amazon_link, supplier_link, sas_link, image_url, posted, posted_at, created_at`

// dealSchema — строка таблицы deals.
type dealSchema struct {
	EAN            string          `db:"ean"`
	ASIN           string          `db:"asin"`
	Name           string          `db:"name"`
	SupplierCost   decimal.Decimal `db:"supplier_cost"`
	Price          decimal.Decimal `db:"amazon_price"`
	Fees           decimal.Decimal `db:"fees"`
	Profit         decimal.Decimal `db:"profit"`
	ROI            decimal.Decimal `db:"roi"`
	EstimatedSales int             `db:"estimated_sales"`
	AmazonLink     string          `db:"amazon_link"`
	SupplierLink   string          `db:"supplier_link"`
	LookupLink     string          `db:"sas_link"`
	ImageURL       string          `db:"image_url"`
	Posted         bool            `db:"posted"`
	PostedAt       sql.NullTime    `db:"posted_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

func fromDeal(d entity.Deal, now time.Time) dealSchema {
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return dealSchema{
		EAN:            d.EAN,
		ASIN:           d.ASIN,
		Name:           d.Name,
		SupplierCost:   d.SupplierCost.Round(2),
		Price:          d.Price.Round(2),
		Fees:           d.Fees.Round(2),
		Profit:         d.Profit.Round(2),
		ROI:            d.ROI.Round(2),
		EstimatedSales: d.EstimatedSales,
		AmazonLink:     d.MarketplaceLink,
		SupplierLink:   d.SupplierLink,
		LookupLink:     d.LookupLink,
		ImageURL:       d.ImageURL,
		CreatedAt:      createdAt.UTC(),
	}
}

func (s *dealSchema) toDomain() entity.Deal {
	deal := entity.Deal{
		EAN:             s.EAN,
		ASIN:            s.ASIN,
		Name:            s.Name,
		SupplierCost:    s.SupplierCost,
		Price:           s.Price,
		Fees:            s.Fees,
		Profit:          s.Profit,
		ROI:             s.ROI,
		EstimatedSales:  s.EstimatedSales,
		MarketplaceLink: s.AmazonLink,
		SupplierLink:    s.SupplierLink,
		LookupLink:      s.LookupLink,
		ImageURL:        s.ImageURL,
		Posted:          s.Posted,
		CreatedAt:       s.CreatedAt,
	}

	if s.PostedAt.Valid {
		postedAt := s.PostedAt.Time
		deal.PostedAt = &postedAt
	}

	return deal
}
