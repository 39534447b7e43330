// Package courier composes and dispatches transactional email through
// interchangeable delivery backends.
//
// The package decouples what an email says (recipients, subject, template,
// bound variables) from how it is delivered (SMTP, AWS SES, Mailgun,
// Resend). It consists of four parts:
//
//   - Mailable: a fluent, validating builder that turns declarative calls
//     into an immutable Message
//   - render.Service: compiles and caches named views (Go templates,
//     Handlebars, or markdown with YAML frontmatter) and renders them
//     against bound data
//   - Transport: the uniform send contract each backend adapter implements
//   - Mailer: the orchestrator tying the three together
//
// # Usage
//
// Construct a transport, optionally a template service, and a Mailer:
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Username: "postmaster",
//		Password: os.Getenv("SMTP_PASSWORD"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	views, err := render.NewService(render.Config{
//		Engine: render.EngineHandlebars,
//		FS:     os.DirFS("emails"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mailer, err := courier.New(sender,
//		courier.WithTemplates(views),
//		courier.WithFrom(courier.Addr("Team", "team@example.com")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := mailer.Send(ctx, courier.NewMailable().
//		To("ada@example.com").
//		Subject("Welcome").
//		Template("welcome").
//		With("name", "Ada"))
//
// The returned DeliveryResult carries the provider-issued message id in a
// normalized shape regardless of backend.
//
// # Choosing a backend at configuration time
//
// The transport subpackage provides a tagged-union configuration resolved
// once at construction:
//
//	t, err := transport.New(ctx, transport.Config{
//		Kind:    transport.KindMailgun,
//		Mailgun: &mailgun.Config{Domain: "mg.example.com", APIKey: key},
//	})
//
// Unknown kinds and incomplete variants fail with ErrInvalidConfig before
// any network activity.
//
// # Literal content
//
// SendMessage dispatches a pre-built Message without template rendering:
//
//	result, err := mailer.SendMessage(ctx, &courier.Message{
//		To:      []courier.Address{{Email: "ada@example.com"}},
//		Subject: "Hi",
//		HTML:    "<p>Hello!</p>",
//	})
//
// When a message has HTML but no text body, a plain-text alternative is
// derived automatically by stripping markup.
//
// # Errors
//
// Failures are typed and distinguishable by kind:
//
//   - ErrInvalidConfig: missing or unknown configuration, raised at
//     construction or first use, never after a network call
//   - ErrNoRecipient, ErrNoSubject, ErrNoContent: envelope validation,
//     raised before any transport interaction
//   - render.ErrTemplateNotFound, render.ErrRenderFailed: template
//     resolution and engine failures, raised before dispatch
//   - ErrSendFailed: delivery failure; match with errors.Is, then extract
//     the provider code and response via errors.As with *TransportError
//
// Retries, rate limiting, and queueing are deliberately out of scope and
// belong to the surrounding application.
//
// # Concurrency
//
// A Mailer is safe for concurrent use. Each Send is an independent unit of
// work; compiled templates are shared read-only, and the SMTP adapter pools
// its connections internally. A Mailable, by contrast, is single-owner
// builder state consumed by exactly one build.
package courier
