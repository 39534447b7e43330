package courier

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a transport or mailer configuration is
	// missing a required field or names an unknown backend.
	ErrInvalidConfig = errors.New("invalid mailer configuration")

	// ErrNoRecipient indicates no "to" recipient was specified.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("message must have a subject")

	// ErrNoContent indicates the message has neither text nor HTML content.
	ErrNoContent = errors.New("message must have text or html content")

	// ErrSendFailed indicates the delivery backend rejected or failed the send.
	ErrSendFailed = errors.New("failed to send message")
)

// TransportError carries provider-level detail of a failed delivery.
// It matches ErrSendFailed via errors.Is, and callers that need the
// provider response extract it with errors.As.
type TransportError struct {
	Err      error  // Underlying provider error, if any
	Provider string // Backend name ("smtp", "ses", "mailgun", "resend")
	Code     string // Protocol or API error code, if the backend reported one
	Response string // Raw provider response body or message
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s: send failed", e.Provider)
	if e.Code != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Code)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSendFailed, e.Err}
	}
	return []error{ErrSendFailed}
}
