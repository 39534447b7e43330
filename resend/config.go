package resend

import (
	"fmt"

	"github.com/courierkit/courier"
)

// Config holds Resend transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: resend: missing apiKey", courier.ErrInvalidConfig)
	}
	return nil
}
