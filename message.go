package courier

import "fmt"

// Address is a single mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// Addr is shorthand for constructing an Address.
func Addr(name, email string) Address {
	return Address{Name: name, Email: email}
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if a name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// AddressStrings formats a list of addresses into RFC 5322 strings,
// the shape most provider SDKs expect.
func AddressStrings(addrs []Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

// Attachment represents a single email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// Message is the fully specified envelope ready for transport.
// Instances are value objects: once produced by a Mailable build they hold
// no reference to the builder and are never mutated by the library.
type Message struct {
	Headers     map[string]string
	Subject     string
	HTML        string
	Text        string
	ReplyTo     string
	From        Address
	To          []Address
	CC          []Address
	BCC         []Address
	Attachments []Attachment
}

// validate checks the envelope invariants that do not depend on rendering.
// Content presence is checked separately because templated messages receive
// their bodies at the render stage.
func (m *Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	if m.Subject == "" {
		return ErrNoSubject
	}
	return nil
}
