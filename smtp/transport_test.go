package smtp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courierkit/courier"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid with auth",
			cfg:  Config{Host: "smtp.example.com", Username: "u", Password: "p"},
		},
		{
			name: "valid without auth",
			cfg:  Config{Host: "smtp.example.com"},
		},
		{
			name:    "missing host",
			cfg:     Config{Username: "u", Password: "p"},
			wantErr: "missing host",
		},
		{
			name:    "missing password",
			cfg:     Config{Host: "smtp.example.com", Username: "u"},
			wantErr: "missing auth.pass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, courier.ErrInvalidConfig)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})

	require.ErrorIs(t, err, courier.ErrInvalidConfig)
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	transport, err := New(Config{Host: "smtp.example.com"})
	require.NoError(t, err)

	require.Equal(t, 587, transport.config.Port)
	require.Equal(t, 4, transport.config.PoolSize)
	require.Equal(t, 4, cap(transport.pool.slots))
}

func TestTransport_BuildMsg(t *testing.T) {
	t.Parallel()

	transport, err := New(Config{Host: "smtp.example.com"})
	require.NoError(t, err)

	msg := &courier.Message{
		From:    courier.Addr("Team", "team@example.com"),
		To:      []courier.Address{{Email: "ada@example.com"}},
		CC:      []courier.Address{{Email: "copy@example.com"}},
		ReplyTo: "support@example.com",
		Subject: "Welcome",
		Text:    "hello",
		HTML:    "<p>hello</p>",
		Headers: map[string]string{"X-Campaign": "onboarding"},
		Attachments: []courier.Attachment{
			{Filename: "terms.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		},
	}

	m, id, err := transport.buildMsg(msg)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Contains(t, id, "@smtp.example.com")
}

func TestTransport_BuildMsg_InvalidFrom(t *testing.T) {
	t.Parallel()

	transport, err := New(Config{Host: "smtp.example.com"})
	require.NoError(t, err)

	_, _, err = transport.buildMsg(&courier.Message{
		To:      []courier.Address{{Email: "ada@example.com"}},
		Subject: "Welcome",
		Text:    "hello",
	})

	require.Error(t, err)
}
