package config

import "time"

type Worker struct {
	ScanCron        string        `env:"SCAN_CRON" envDefault:"0 */6 * * *"`
	PostCron        string        `env:"POST_CRON" envDefault:"0 * * * *"`
	ScanTimeout     time.Duration `env:"SCAN_TIMEOUT" envDefault:"3h"`
	PostTimeout     time.Duration `env:"POST_TIMEOUT" envDefault:"30m"`
	ProbeAddress    string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress  string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	HTTPAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
