package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldASIN            = "asin"
	FieldAttempt         = "attempt"
	FieldComponent       = "component"
	FieldDurationMs      = "duration-ms"
	FieldEAN             = "ean"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldProfit          = "profit"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldROI             = "roi"
	FieldSales           = "sales"
	FieldStack           = "stack"
	FieldTask            = "task"
	FieldURL             = "url"
)
