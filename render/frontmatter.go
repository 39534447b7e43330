package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var fmDelimiter = []byte("---")

// splitFrontmatter separates optional YAML frontmatter from the markdown
// body. Content without an opening "---" line is returned whole with empty
// metadata; an opening delimiter without a closing one is an error.
func splitFrontmatter(content []byte) (map[string]any, string, error) {
	meta := make(map[string]any)

	if !bytes.HasPrefix(content, fmDelimiter) {
		return meta, string(content), nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, fmDelimiter), "\r\n")
	if len(rest) == 0 {
		return nil, "", fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, fmDelimiter)
	if end == -1 {
		return nil, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	header := rest[:end]
	body := rest[end+len(fmDelimiter):]
	// Drop the single newline following the closing delimiter.
	body = bytes.TrimPrefix(body, []byte("\r\n"))
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &meta); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return meta, string(body), nil
}
