package ses

import (
	"fmt"

	"github.com/courierkit/courier"
)

// Config holds AWS SES v2 transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
// With no static keys the SDK's default credential chain is used.
type Config struct {
	Region          string `env:"AWS_SES_REGION"`
	AccessKeyID     string `env:"AWS_SES_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SES_SECRET_ACCESS_KEY"`
	SessionToken    string `env:"AWS_SES_SESSION_TOKEN"`
	Endpoint        string `env:"AWS_SES_ENDPOINT"` // Override for testing against a local stack
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("%w: ses: missing region", courier.ErrInvalidConfig)
	}
	if c.AccessKeyID != "" && c.SecretAccessKey == "" {
		return fmt.Errorf("%w: ses: missing credentials.secretAccessKey", courier.ErrInvalidConfig)
	}
	return nil
}
