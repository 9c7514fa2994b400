package entity

import "github.com/shopspring/decimal"

// CatalogEntry is one wholesale offer taken from the supplier feed.
type CatalogEntry struct {
	EAN           string
	SupplierPrice decimal.Decimal
	SupplierLink  string
	Name          string
}

// Credentials are the session tokens handed to the scanner at run start.
type Credentials struct {
	Marketplace string          `json:"amazon" validate:"required"`
	Seller      string          `json:"seller" validate:"required"`
	Lookup      []BrowserCookie `json:"sas" validate:"required,min=1,dive"`
}

type BrowserCookie struct {
	Name     string  `json:"name" validate:"required"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain" validate:"required"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	Secure   bool    `json:"secure"`
	HTTPOnly bool    `json:"httpOnly"`
}
