package smtp

import (
	"fmt"
	"time"

	"github.com/courierkit/courier"
)

// Config holds SMTP transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host      string        `env:"SMTP_HOST"`
	Username  string        `env:"SMTP_USERNAME"`
	Password  string        `env:"SMTP_PASSWORD"`
	Port      int           `env:"SMTP_PORT" envDefault:"587"`
	PoolSize  int           `env:"SMTP_POOL_SIZE" envDefault:"4"`
	Timeout   time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	Secure    bool          `env:"SMTP_SECURE"`     // Implicit TLS (SMTPS, port 465)
	IgnoreTLS bool          `env:"SMTP_IGNORE_TLS"` // Plaintext, no STARTTLS negotiation
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: smtp: missing host", courier.ErrInvalidConfig)
	}
	if c.Username != "" && c.Password == "" {
		return fmt.Errorf("%w: smtp: missing auth.pass", courier.ErrInvalidConfig)
	}
	return nil
}
