package courier

import "context"

// Transport delivers a finished Message through one backend. Adapters live
// in their own subpackages (smtp, ses, mailgun, resend); each normalizes its
// provider's success and error shapes so callers stay transport-agnostic.
type Transport interface {
	// Send delivers the message. It returns the normalized DeliveryResult
	// on success, or a *TransportError carrying the provider response.
	Send(ctx context.Context, msg *Message) (*DeliveryResult, error)
}

// DeliveryResult is the normalized payload returned after a transport
// accepts a message for delivery.
type DeliveryResult struct {
	MessageID string // Provider-issued message identifier
	Raw       string // Raw provider response, for diagnostics
}
