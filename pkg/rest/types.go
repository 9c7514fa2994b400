// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Deal Найденная сделка
type Deal struct {
	Ean            string  `json:"ean"`
	Asin           string  `json:"asin"`
	Name           string  `json:"name"`
	SupplierCost   string  `json:"supplierCost"`
	AmazonPrice    string  `json:"amazonPrice"`
	Fees           string  `json:"fees"`
	Profit         string  `json:"profit"`
	Roi            string  `json:"roi"`
	EstimatedSales int     `json:"estimatedSales"`
	AmazonLink     string  `json:"amazonLink"`
	SupplierLink   string  `json:"supplierLink"`
	SasLink        string  `json:"sasLink"`
	ImageURL       string  `json:"imageUrl"`
	Posted         bool    `json:"posted"`
	PostedAt       *string `json:"postedAt,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// PendingDeals Список неопубликованных сделок
type PendingDeals struct {
	Deals []Deal `json:"deals"`
}

// DealKey Ключ сделки
type DealKey struct {
	Ean  string `json:"ean" validate:"required"`
	Asin string `json:"asin" validate:"required,len=10"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
