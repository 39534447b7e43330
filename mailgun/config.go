package mailgun

import (
	"fmt"
	"time"

	"github.com/courierkit/courier"
)

// Config holds Mailgun transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Domain  string        `env:"MAILGUN_DOMAIN"`
	APIKey  string        `env:"MAILGUN_API_KEY"`
	Host    string        `env:"MAILGUN_HOST"` // API host override (e.g., "api.eu.mailgun.net")
	Timeout time.Duration `env:"MAILGUN_TIMEOUT" envDefault:"15s"`
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("%w: mailgun: missing domain", courier.ErrInvalidConfig)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: mailgun: missing apiKey", courier.ErrInvalidConfig)
	}
	return nil
}
