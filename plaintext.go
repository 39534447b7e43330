package courier

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every element, leaving only character data.
// bluemonday policies are safe for concurrent use.
var textPolicy = bluemonday.StrictPolicy()

// PlainText derives a text/plain alternative from HTML markup. The Mailer
// uses it when a message carries an HTML body without an explicit text one,
// so every outgoing message has a readable fallback part.
func PlainText(markup string) string {
	text := stdhtml.UnescapeString(textPolicy.Sanitize(markup))

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			// Collapse runs of blank lines into one separator.
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
