package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter_WithMetadata(t *testing.T) {
	t.Parallel()

	meta, body, err := splitFrontmatter([]byte("---\nsubject: Welcome\npriority: 1\n---\nHello!\n"))

	require.NoError(t, err)
	require.Equal(t, "Welcome", meta["subject"])
	require.Equal(t, 1, meta["priority"])
	require.Equal(t, "Hello!\n", body)
}

func TestSplitFrontmatter_NoFrontmatter(t *testing.T) {
	t.Parallel()

	meta, body, err := splitFrontmatter([]byte("Hello!\n"))

	require.NoError(t, err)
	require.Empty(t, meta)
	require.Equal(t, "Hello!\n", body)
}

func TestSplitFrontmatter_EmptyHeader(t *testing.T) {
	t.Parallel()

	meta, body, err := splitFrontmatter([]byte("---\n---\nHello!\n"))

	require.NoError(t, err)
	require.Empty(t, meta)
	require.Equal(t, "Hello!\n", body)
}

func TestSplitFrontmatter_UnclosedDelimiter(t *testing.T) {
	t.Parallel()

	_, _, err := splitFrontmatter([]byte("---\nsubject: Welcome\n"))

	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestSplitFrontmatter_MalformedYAML(t *testing.T) {
	t.Parallel()

	_, _, err := splitFrontmatter([]byte("---\nsubject: [unclosed\n---\nHello!\n"))

	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestSplitFrontmatter_CRLF(t *testing.T) {
	t.Parallel()

	meta, body, err := splitFrontmatter([]byte("---\r\nsubject: Welcome\r\n---\r\nHello!\r\n"))

	require.NoError(t, err)
	require.Equal(t, "Welcome", meta["subject"])
	require.Equal(t, "Hello!\r\n", body)
}
