package configs

import "time"

// Redis configures the shared counter store used by the delivery rate
// limiter. When Enabled is false the service runs without Redis and the
// delivery endpoint is not rate limited.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`

	// RateLimit is the number of delivery requests allowed per client IP per
	// RateWindow.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}
