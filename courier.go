package courier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	texttemplate "text/template"

	"github.com/courierkit/courier/render"
)

// Mailer orchestrates the send pipeline: it resolves configured defaults
// into a draft, renders a referenced template, and dispatches the finished
// Message through the configured transport. Every send walks the same
// ordered stages (draft, resolved, rendered, dispatched); a failure at any
// stage aborts before the next one runs.
type Mailer struct {
	transport Transport
	templates *render.Service
	logger    *slog.Logger
	from      Address
	replyTo   string
}

// Option configures the Mailer.
type Option func(*Mailer)

// WithTemplates sets the template render service. Required for sending
// Mailables that reference a template.
func WithTemplates(svc *render.Service) Option {
	return func(m *Mailer) {
		m.templates = svc
	}
}

// WithFrom sets the default sender merged into drafts without one.
func WithFrom(addr Address) Option {
	return func(m *Mailer) {
		m.from = addr
	}
}

// WithReplyTo sets the default reply-to merged into drafts without one.
func WithReplyTo(email string) Option {
	return func(m *Mailer) {
		m.replyTo = email
	}
}

// WithLogger sets the structured logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Mailer bound to one transport for its lifetime.
func New(transport Transport, opts ...Option) (*Mailer, error) {
	if transport == nil {
		return nil, fmt.Errorf("%w: transport is required", ErrInvalidConfig)
	}

	m := &Mailer{
		transport: transport,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Send builds, renders, and dispatches a Mailable. The Mailable is consumed
// by this call and must not be reused.
func (m *Mailer) Send(ctx context.Context, mail *Mailable) (*DeliveryResult, error) {
	if mail == nil {
		return nil, ErrNoRecipient
	}

	// Resolved: merge defaults, then run the terminal build.
	if mail.draft.From.Email == "" {
		mail.draft.From = m.from
	}
	if mail.draft.ReplyTo == "" {
		mail.draft.ReplyTo = m.replyTo
	}
	msg, err := mail.Build()
	if err != nil {
		return nil, err
	}

	// Rendered: templated drafts get their bodies here.
	if name := mail.TemplateName(); name != "" {
		if err := m.renderInto(ctx, msg, name, mail.Data()); err != nil {
			return nil, err
		}
	}

	return m.dispatch(ctx, msg)
}

// SendMessage dispatches a pre-built message with literal content, skipping
// the render stage.
func (m *Mailer) SendMessage(ctx context.Context, msg *Message) (*DeliveryResult, error) {
	if msg == nil {
		return nil, ErrNoRecipient
	}
	out := *msg
	if out.From.Email == "" {
		out.From = m.from
	}
	if out.ReplyTo == "" {
		out.ReplyTo = m.replyTo
	}
	return m.dispatch(ctx, &out)
}

// renderInto fills the message bodies from the named template. A frontmatter
// "subject" wins only when the draft left the subject empty, and subjects may
// themselves reference bound variables.
func (m *Mailer) renderInto(ctx context.Context, msg *Message, name string, data map[string]any) error {
	if m.templates == nil {
		return fmt.Errorf("%w: template %q referenced but no template service configured", ErrInvalidConfig, name)
	}

	result, err := m.templates.Render(name, data)
	if err != nil {
		return err
	}

	msg.HTML = result.HTML
	if msg.Text == "" {
		msg.Text = result.Text
	}
	if msg.Subject == "" {
		if subject, ok := result.Meta["subject"].(string); ok {
			msg.Subject = subject
		}
	}
	if msg.Subject != "" {
		subject, err := m.processSubject(msg.Subject, data)
		if err != nil {
			return errors.Join(render.ErrRenderFailed, err)
		}
		msg.Subject = subject
	}

	m.logger.DebugContext(ctx, "template rendered",
		slog.String("template", name),
		slog.Int("html_bytes", len(msg.HTML)))
	return nil
}

// dispatch validates the finished envelope and hands it to the transport.
func (m *Mailer) dispatch(ctx context.Context, msg *Message) (*DeliveryResult, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}
	if msg.HTML == "" && msg.Text == "" {
		return nil, ErrNoContent
	}
	if msg.Text == "" {
		msg.Text = PlainText(msg.HTML)
	}

	result, err := m.transport.Send(ctx, msg)
	if err != nil {
		m.logger.ErrorContext(ctx, "message dispatch failed",
			slog.String("subject", msg.Subject),
			slog.Int("recipients", len(msg.To)),
			slog.Any("error", err))
		return nil, err
	}

	m.logger.InfoContext(ctx, "message dispatched",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(msg.To)),
		slog.String("message_id", result.MessageID))
	return result, nil
}

// processSubject executes the subject as a template (supports {{.Variable}}).
func (m *Mailer) processSubject(subject string, data map[string]any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
