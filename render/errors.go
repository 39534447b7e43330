package render

import "errors"

var (
	// ErrInvalidConfig indicates the service configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid template configuration")

	// ErrUnknownEngine indicates the configured engine kind is not in the
	// supported set.
	ErrUnknownEngine = errors.New("unknown template engine")

	// ErrTemplateNotFound indicates the resolved template path does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRenderFailed indicates compilation or rendering failed; the engine
	// cause is attached.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates malformed YAML frontmatter in a
	// markdown template.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
