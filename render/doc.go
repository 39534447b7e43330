// Package render compiles and caches named email views and executes them
// against bound data.
//
// A Service owns one engine from a closed set (Go html/template, Handlebars,
// or markdown with YAML frontmatter), a template root filesystem, and the
// helpers and partials shared by every view. Views compile at most once per
// process; the compiled-template cache supports free concurrent reads and
// collapses racing compiles of the same view.
//
// The markdown engine additionally yields a plain-text companion (the
// processed markdown source), frontmatter metadata such as the message
// subject, an optional HTML layout wrapper, and a [!button|Label](url)
// shorthand for call-to-action links.
package render
