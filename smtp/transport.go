// Package smtp delivers messages over SMTP through a bounded pool of
// reusable connections. Protocol handling belongs to wneessen/go-mail; this
// package maps the courier envelope onto it and normalizes failures into
// *courier.TransportError with the protocol reason attached.
package smtp

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"

	"github.com/courierkit/courier"
)

// Transport implements courier.Transport over SMTP.
type Transport struct {
	pool   *pool
	config Config
}

// New creates an SMTP transport. No connection is made until the first send.
func New(cfg Config) (*Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 4
	}

	t := &Transport{config: cfg}
	t.pool = newPool(cfg.PoolSize, func() (*mail.Client, error) {
		return newClient(cfg)
	})
	return t, nil
}

func newClient(cfg Config) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	switch {
	case cfg.Secure:
		opts = append(opts, mail.WithSSLPort(false))
	case cfg.IgnoreTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: smtp: %v", courier.ErrInvalidConfig, err)
	}
	return client, nil
}

// Send implements courier.Transport. The generated Message-ID doubles as
// the delivery identifier, since SMTP servers issue none of their own.
func (t *Transport) Send(ctx context.Context, msg *courier.Message) (*courier.DeliveryResult, error) {
	m, id, err := t.buildMsg(msg)
	if err != nil {
		return nil, &courier.TransportError{Provider: "smtp", Err: err}
	}

	c, err := t.pool.get(ctx)
	if err != nil {
		return nil, &courier.TransportError{Provider: "smtp", Err: err}
	}

	if !c.dialed {
		if err := c.client.DialWithContext(ctx); err != nil {
			t.pool.discard(c)
			return nil, t.transportError(err)
		}
		c.dialed = true
	}

	if err := c.client.Send(m); err != nil {
		t.pool.discard(c)
		return nil, t.transportError(err)
	}
	t.pool.put(c)

	return &courier.DeliveryResult{
		MessageID: id,
		Raw:       fmt.Sprintf("accepted by %s", t.config.Host),
	}, nil
}

// Close shuts down the connection pool.
func (t *Transport) Close() error {
	return t.pool.close()
}

func (t *Transport) buildMsg(msg *courier.Message) (*mail.Msg, string, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From.String()); err != nil {
		return nil, "", err
	}
	if err := m.To(courier.AddressStrings(msg.To)...); err != nil {
		return nil, "", err
	}
	if len(msg.CC) > 0 {
		if err := m.Cc(courier.AddressStrings(msg.CC)...); err != nil {
			return nil, "", err
		}
	}
	if len(msg.BCC) > 0 {
		if err := m.Bcc(courier.AddressStrings(msg.BCC)...); err != nil {
			return nil, "", err
		}
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, "", err
		}
	}

	m.Subject(msg.Subject)
	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}

	for key, value := range msg.Headers {
		m.SetGenHeader(mail.Header(key), value)
	}

	for _, a := range msg.Attachments {
		opts := []mail.FileOption{mail.WithFileName(a.Filename)}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		var err error
		if a.ContentID != "" {
			err = m.EmbedReader(a.Filename, bytes.NewReader(a.Content), opts...)
		} else {
			err = m.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...)
		}
		if err != nil {
			return nil, "", err
		}
	}

	id := fmt.Sprintf("%s@%s", uuid.NewString(), t.config.Host)
	m.SetMessageIDWithValue(id)
	return m, id, nil
}

// transportError attaches the SMTP reason when go-mail reports one.
func (t *Transport) transportError(err error) error {
	te := &courier.TransportError{Provider: "smtp", Err: err}
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) {
		te.Code = sendErr.Reason.String()
		te.Response = sendErr.Error()
	}
	return te
}
