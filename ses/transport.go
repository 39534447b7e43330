// Package ses delivers messages through the AWS SES v2 API. The envelope
// maps onto structured Simple content (subject, both bodies, headers,
// attachments); API failures surface as *courier.TransportError with the
// provider error code attached.
package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"github.com/courierkit/courier"
)

// api is the subset of the SES v2 client this transport uses.
type api interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Transport implements courier.Transport over AWS SES v2.
type Transport struct {
	client api
}

// New creates an SES transport. Static credentials from the config take
// precedence; otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config) (*Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: ses: %v", courier.ErrInvalidConfig, err)
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Transport{client: client}, nil
}

// Send implements courier.Transport.
func (t *Transport) Send(ctx context.Context, msg *courier.Message) (*courier.DeliveryResult, error) {
	out, err := t.client.SendEmail(ctx, buildInput(msg))
	if err != nil {
		return nil, transportError(err)
	}

	id := aws.ToString(out.MessageId)
	return &courier.DeliveryResult{MessageID: id, Raw: id}, nil
}

func buildInput(msg *courier.Message) *sesv2.SendEmailInput {
	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML)}
	}
	if msg.Text != "" {
		body.Text = &types.Content{Data: aws.String(msg.Text)}
	}

	simple := &types.Message{
		Subject: &types.Content{Data: aws.String(msg.Subject)},
		Body:    body,
	}
	for key, value := range msg.Headers {
		simple.Headers = append(simple.Headers, types.MessageHeader{
			Name:  aws.String(key),
			Value: aws.String(value),
		})
	}
	for _, a := range msg.Attachments {
		att := types.Attachment{
			RawContent: a.Content,
			FileName:   aws.String(a.Filename),
		}
		if a.ContentType != "" {
			att.ContentType = aws.String(a.ContentType)
		}
		if a.ContentID != "" {
			att.ContentId = aws.String(a.ContentID)
			att.ContentDisposition = types.AttachmentContentDispositionInline
		}
		simple.Attachments = append(simple.Attachments, att)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From.String()),
		Destination: &types.Destination{
			ToAddresses:  courier.AddressStrings(msg.To),
			CcAddresses:  courier.AddressStrings(msg.CC),
			BccAddresses: courier.AddressStrings(msg.BCC),
		},
		Content: &types.EmailContent{Simple: simple},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	return input
}

// transportError attaches the SES error code when the SDK reports one.
func transportError(err error) error {
	te := &courier.TransportError{Provider: "ses", Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		te.Code = apiErr.ErrorCode()
		te.Response = apiErr.ErrorMessage()
	}
	return te
}
