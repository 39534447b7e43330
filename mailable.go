package courier

import "maps"

// Mailable is a declarative description of one email: a fluent builder that
// accumulates envelope fields, an optional template reference, and the
// variables bound to it. A terminal Build call validates the draft and emits
// an immutable Message. Each Mailable is single-owner state; it must be
// consumed by exactly one build and never shared across goroutines.
type Mailable struct {
	data     map[string]any
	template string
	draft    Message
}

// NewMailable creates an empty email draft.
func NewMailable() *Mailable {
	return &Mailable{}
}

// Subject sets the message subject.
func (m *Mailable) Subject(subject string) *Mailable {
	m.draft.Subject = subject
	return m
}

// From overrides the configured default sender.
func (m *Mailable) From(addr Address) *Mailable {
	m.draft.From = addr
	return m
}

// To adds plain-email recipients.
func (m *Mailable) To(emails ...string) *Mailable {
	for _, e := range emails {
		m.draft.To = append(m.draft.To, Address{Email: e})
	}
	return m
}

// ToAddress adds recipients with display names.
func (m *Mailable) ToAddress(addrs ...Address) *Mailable {
	m.draft.To = append(m.draft.To, addrs...)
	return m
}

// Cc adds carbon-copy recipients.
func (m *Mailable) Cc(emails ...string) *Mailable {
	for _, e := range emails {
		m.draft.CC = append(m.draft.CC, Address{Email: e})
	}
	return m
}

// Bcc adds blind carbon-copy recipients.
func (m *Mailable) Bcc(emails ...string) *Mailable {
	for _, e := range emails {
		m.draft.BCC = append(m.draft.BCC, Address{Email: e})
	}
	return m
}

// ReplyTo sets the reply-to address.
func (m *Mailable) ReplyTo(email string) *Mailable {
	m.draft.ReplyTo = email
	return m
}

// Text sets the plain-text body.
func (m *Mailable) Text(body string) *Mailable {
	m.draft.Text = body
	return m
}

// HTML sets the HTML body.
func (m *Mailable) HTML(body string) *Mailable {
	m.draft.HTML = body
	return m
}

// Template references a named view; the Mailer renders it with the bound
// variables at send time, so a templated draft may build with empty bodies.
func (m *Mailable) Template(name string) *Mailable {
	m.template = name
	return m
}

// With binds a single template variable.
func (m *Mailable) With(key string, value any) *Mailable {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
	return m
}

// WithMap binds multiple template variables at once.
func (m *Mailable) WithMap(data map[string]any) *Mailable {
	if m.data == nil {
		m.data = make(map[string]any, len(data))
	}
	maps.Copy(m.data, data)
	return m
}

// Attach adds a file attachment.
func (m *Mailable) Attach(filename, contentType string, content []byte) *Mailable {
	m.draft.Attachments = append(m.draft.Attachments, Attachment{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	})
	return m
}

// AttachInline adds an inline attachment referenced by Content-ID.
func (m *Mailable) AttachInline(filename, contentType, contentID string, content []byte) *Mailable {
	m.draft.Attachments = append(m.draft.Attachments, Attachment{
		Filename:    filename,
		ContentType: contentType,
		ContentID:   contentID,
		Content:     content,
	})
	return m
}

// Header sets a custom header.
func (m *Mailable) Header(key, value string) *Mailable {
	if m.draft.Headers == nil {
		m.draft.Headers = make(map[string]string)
	}
	m.draft.Headers[key] = value
	return m
}

// TemplateName returns the referenced template, if any.
func (m *Mailable) TemplateName() string {
	return m.template
}

// Data returns the bound template variables.
func (m *Mailable) Data() map[string]any {
	return m.data
}

// Build validates the draft and returns an immutable Message. Slices and
// maps are deep-copied, so later builder calls cannot reach a built message.
// When a template is referenced, subject and content checks are deferred to
// the render stage, which may supply both.
func (m *Mailable) Build() (*Message, error) {
	if len(m.draft.To) == 0 {
		return nil, ErrNoRecipient
	}
	if m.template == "" {
		if m.draft.Subject == "" {
			return nil, ErrNoSubject
		}
		if m.draft.Text == "" && m.draft.HTML == "" {
			return nil, ErrNoContent
		}
	}

	msg := m.draft
	msg.To = copyAddrs(m.draft.To)
	msg.CC = copyAddrs(m.draft.CC)
	msg.BCC = copyAddrs(m.draft.BCC)
	if m.draft.Headers != nil {
		msg.Headers = maps.Clone(m.draft.Headers)
	}
	if len(m.draft.Attachments) > 0 {
		msg.Attachments = make([]Attachment, len(m.draft.Attachments))
		copy(msg.Attachments, m.draft.Attachments)
	}
	return &msg, nil
}

func copyAddrs(addrs []Address) []Address {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]Address, len(addrs))
	copy(out, addrs)
	return out
}
