// Package transport resolves a tagged-union configuration into a concrete
// delivery backend. Exactly one variant must be populated and match the
// discriminant; unknown kinds and incomplete variants fail with
// courier.ErrInvalidConfig before any network activity.
package transport

import (
	"context"
	"fmt"

	"github.com/courierkit/courier"
	"github.com/courierkit/courier/mailgun"
	"github.com/courierkit/courier/resend"
	"github.com/courierkit/courier/ses"
	"github.com/courierkit/courier/smtp"
)

// Kind identifies a delivery backend.
type Kind string

const (
	KindSMTP    Kind = "smtp"
	KindSES     Kind = "ses"
	KindMailgun Kind = "mailgun"
	KindResend  Kind = "resend"
)

// Config is the tagged union of backend configurations, discriminated by
// Kind. Only the variant matching Kind is consulted.
type Config struct {
	SMTP    *smtp.Config
	SES     *ses.Config
	Mailgun *mailgun.Config
	Resend  *resend.Config
	Kind    Kind `env:"MAIL_TRANSPORT"`
}

// New constructs the transport selected by cfg.Kind. The choice is fixed
// for the resulting transport's lifetime; there is no fallback between
// backends.
func New(ctx context.Context, cfg Config) (courier.Transport, error) {
	switch cfg.Kind {
	case KindSMTP:
		if cfg.SMTP == nil {
			return nil, missingVariant(cfg.Kind)
		}
		return smtp.New(*cfg.SMTP)
	case KindSES:
		if cfg.SES == nil {
			return nil, missingVariant(cfg.Kind)
		}
		return ses.New(ctx, *cfg.SES)
	case KindMailgun:
		if cfg.Mailgun == nil {
			return nil, missingVariant(cfg.Kind)
		}
		return mailgun.New(*cfg.Mailgun)
	case KindResend:
		if cfg.Resend == nil {
			return nil, missingVariant(cfg.Kind)
		}
		return resend.New(*cfg.Resend)
	default:
		return nil, fmt.Errorf("%w: unknown transport kind %q", courier.ErrInvalidConfig, cfg.Kind)
	}
}

func missingVariant(kind Kind) error {
	return fmt.Errorf("%w: transport kind %q selected but its configuration is missing", courier.ErrInvalidConfig, kind)
}
