package render

import (
	htmltemplate "html/template"
)

// EngineKind selects a template engine. The set is closed: unknown values
// are rejected when the service is constructed, not at render time.
type EngineKind string

const (
	// EngineGo renders html/template views (extension ".html").
	EngineGo EngineKind = "go"
	// EngineHandlebars renders Handlebars views (extension ".hbs").
	EngineHandlebars EngineKind = "handlebars"
	// EngineMarkdown renders markdown views with YAML frontmatter and an
	// optional HTML layout (extension ".md").
	EngineMarkdown EngineKind = "markdown"
)

// Result is the output of one render call.
type Result struct {
	// Meta holds frontmatter metadata; only the markdown engine fills it.
	// A "subject" entry supplies the message subject when the draft left
	// it empty.
	Meta map[string]any
	// HTML is the rendered markup.
	HTML string
	// Text is a plain-text companion; only the markdown engine fills it
	// (the processed markdown source before HTML conversion).
	Text string
}

// Template is a compiled view. Compiled once per (engine, path), then
// shared read-only across concurrent render calls.
type Template interface {
	Render(data any) (*Result, error)
}

// engine compiles template source into an executable Template, with the
// configured helpers and partials registered.
type engine interface {
	Ext() string
	Compile(name string, src []byte) (Template, error)
}

// engineConfig carries the pre-resolved material an engine needs: helper
// functions, partial sources (already loaded from the filesystem), and the
// parsed markdown layout.
type engineConfig struct {
	helpers  map[string]any
	partials map[string]string
	layout   *htmltemplate.Template
}

// engines is the closed registry of supported engine constructors.
var engines = map[EngineKind]func(engineConfig) (engine, error){
	EngineGo:         newGoEngine,
	EngineHandlebars: newHandlebarsEngine,
	EngineMarkdown:   newMarkdownEngine,
}
