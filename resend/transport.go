// Package resend delivers messages through the Resend API.
package resend

import (
	"context"

	"github.com/resend/resend-go/v3"

	"github.com/courierkit/courier"
)

// Transport implements courier.Transport over the Resend API.
type Transport struct {
	client *resend.Client
}

// New creates a Resend transport.
func New(cfg Config) (*Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Transport{client: resend.NewClient(cfg.APIKey)}, nil
}

// Send implements courier.Transport.
func (t *Transport) Send(ctx context.Context, msg *courier.Message) (*courier.DeliveryResult, error) {
	resp, err := t.client.Emails.SendWithContext(ctx, buildRequest(msg))
	if err != nil {
		return nil, &courier.TransportError{
			Provider: "resend",
			Response: err.Error(),
			Err:      err,
		}
	}

	return &courier.DeliveryResult{MessageID: resp.Id, Raw: resp.Id}, nil
}

func buildRequest(msg *courier.Message) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      courier.AddressStrings(msg.To),
		Cc:      courier.AddressStrings(msg.CC),
		Bcc:     courier.AddressStrings(msg.BCC),
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Headers: msg.Headers,
	}

	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		})
	}
	return req
}
