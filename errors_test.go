package courier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransportError_MatchesSendFailed(t *testing.T) {
	t.Parallel()

	err := error(&TransportError{Provider: "smtp", Code: "535"})

	require.ErrorIs(t, err, ErrSendFailed)
}

func TestTransportError_ExposesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(&TransportError{Provider: "smtp", Err: cause})

	require.ErrorIs(t, err, cause)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "smtp", te.Provider)
}

func TestTransportError_Message(t *testing.T) {
	t.Parallel()

	err := &TransportError{
		Provider: "ses",
		Code:     "Throttling",
		Err:      errors.New("rate exceeded"),
	}

	require.Equal(t, "ses: send failed (Throttling): rate exceeded", err.Error())
}
