// Package mailgun delivers messages through the Mailgun HTTP API. The
// multipart form encoding and the HTTP call itself belong to
// mailgun-go; non-2xx responses surface as *courier.TransportError
// carrying the raw response body.
package mailgun

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/courierkit/courier"
)

// Transport implements courier.Transport over the Mailgun Messages API.
type Transport struct {
	mg mailgun.Mailgun
}

// New creates a Mailgun transport.
func New(cfg Config) (*Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.Host != "" {
		mg.SetAPIBase("https://" + cfg.Host + "/v3")
	}
	if cfg.Timeout > 0 {
		mg.SetClient(&http.Client{Timeout: cfg.Timeout})
	}
	return &Transport{mg: mg}, nil
}

// Send implements courier.Transport.
func (t *Transport) Send(ctx context.Context, msg *courier.Message) (*courier.DeliveryResult, error) {
	m := t.mg.NewMessage(
		msg.From.String(),
		msg.Subject,
		msg.Text,
		courier.AddressStrings(msg.To)...,
	)
	if msg.HTML != "" {
		m.SetHtml(msg.HTML)
	}
	if msg.ReplyTo != "" {
		m.SetReplyTo(msg.ReplyTo)
	}
	for _, cc := range courier.AddressStrings(msg.CC) {
		m.AddCC(cc)
	}
	for _, bcc := range courier.AddressStrings(msg.BCC) {
		m.AddBCC(bcc)
	}
	for key, value := range msg.Headers {
		m.AddHeader(key, value)
	}
	for _, a := range msg.Attachments {
		if a.ContentID != "" {
			m.AddReaderInline(a.Filename, io.NopCloser(bytes.NewReader(a.Content)))
		} else {
			m.AddBufferAttachment(a.Filename, a.Content)
		}
	}

	resp, id, err := t.mg.Send(ctx, m)
	if err != nil {
		return nil, transportError(err)
	}

	return &courier.DeliveryResult{MessageID: id, Raw: resp}, nil
}

// transportError attaches the HTTP status and response body on non-2xx
// replies.
func transportError(err error) error {
	te := &courier.TransportError{Provider: "mailgun", Err: err}
	var unexpected *mailgun.UnexpectedResponseError
	if errors.As(err, &unexpected) {
		te.Code = strconv.Itoa(unexpected.Actual)
		te.Response = string(unexpected.Data)
	}
	return te
}
