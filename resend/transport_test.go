package resend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courierkit/courier"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Config{APIKey: "re_123"}.Validate())

	err := Config{}.Validate()
	require.ErrorIs(t, err, courier.ErrInvalidConfig)
	require.ErrorContains(t, err, "missing apiKey")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})

	require.ErrorIs(t, err, courier.ErrInvalidConfig)
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	req := buildRequest(&courier.Message{
		From:    courier.Addr("Team", "team@example.com"),
		To:      []courier.Address{{Email: "ada@example.com"}},
		BCC:     []courier.Address{{Email: "audit@example.com"}},
		ReplyTo: "support@example.com",
		Subject: "Welcome",
		Text:    "hello",
		HTML:    "<p>hello</p>",
		Headers: map[string]string{"X-Campaign": "onboarding"},
		Attachments: []courier.Attachment{
			{Filename: "terms.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
			{Filename: "logo.png", ContentType: "image/png", ContentID: "logo", Content: []byte{0x89}},
		},
	})

	require.Equal(t, "Team <team@example.com>", req.From)
	require.Equal(t, []string{"ada@example.com"}, req.To)
	require.Equal(t, []string{"audit@example.com"}, req.Bcc)
	require.Equal(t, "support@example.com", req.ReplyTo)
	require.Equal(t, "Welcome", req.Subject)
	require.Equal(t, "<p>hello</p>", req.Html)
	require.Equal(t, "hello", req.Text)
	require.Equal(t, "onboarding", req.Headers["X-Campaign"])

	require.Len(t, req.Attachments, 2)
	require.Equal(t, "terms.pdf", req.Attachments[0].Filename)
	require.Equal(t, "logo", req.Attachments[1].ContentId)
}
