package config

import "time"

type Scanner struct {
	CatalogURL     string        `env:"CATALOG_URL" envDefault:"https://raw.githubusercontent.com/dronx07/qogita_best_selling/main/products.json"`
	CredentialsURL string        `env:"CREDENTIALS_URL" envDefault:"https://raw.githubusercontent.com/dronx07/cookie_refresh/main/cookies.json"`
	SourceToken    string        `env:"SOURCE_TOKEN" json:"-"`
	SourceTimeout  time.Duration `env:"SOURCE_TIMEOUT" envDefault:"10s"`

	Proxy       string        `env:"PROXY" json:"-"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	HTTPRetries int           `env:"HTTP_RETRIES" envDefault:"3"`

	MaxInFlight       int           `env:"MAX_IN_FLIGHT" envDefault:"100"`
	BrowserPages      int           `env:"BROWSER_PAGES" envDefault:"10"`
	BrowserHeadless   bool          `env:"BROWSER_HEADLESS" envDefault:"true"`
	BrowserProxy      string        `env:"BROWSER_PROXY" json:"-"`
	NavigationTimeout time.Duration `env:"NAVIGATION_TIMEOUT" envDefault:"60s"`

	SearchHost  string `env:"MARKETPLACE_SEARCH_HOST" envDefault:"https://www.amazon.fr"`
	APIHost     string `env:"MARKETPLACE_API_HOST" envDefault:"https://sellercentral-europe.amazon.com"`
	LookupHost  string `env:"LOOKUP_HOST" envDefault:"https://sas.selleramp.com"`
	CountryCode string `env:"MARKETPLACE_COUNTRY" envDefault:"FR"`
	Locale      string `env:"MARKETPLACE_LOCALE" envDefault:"en-GB"`
	Currency    string `env:"MARKETPLACE_CURRENCY" envDefault:"EUR"`

	IdentifierCacheTTL time.Duration `env:"IDENTIFIER_CACHE_TTL" envDefault:"168h"`
}
