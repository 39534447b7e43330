package render

import (
	"bytes"
	"errors"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

type markdownEngine struct {
	md  goldmark.Markdown
	cfg engineConfig
}

func newMarkdownEngine(cfg engineConfig) (engine, error) {
	return &markdownEngine{
		cfg: cfg,
		md: goldmark.New(
			goldmark.WithExtensions(newButtonExtension()),
		),
	}, nil
}

func (e *markdownEngine) Ext() string { return ".md" }

func (e *markdownEngine) Compile(name string, src []byte) (Template, error) {
	meta, body, err := splitFrontmatter(src)
	if err != nil {
		return nil, err
	}

	root := texttemplate.New(name)
	if len(e.cfg.helpers) > 0 {
		root = root.Funcs(texttemplate.FuncMap(e.cfg.helpers))
	}
	for pname, psrc := range e.cfg.partials {
		if _, err := root.New(pname).Parse(psrc); err != nil {
			return nil, err
		}
	}
	tmpl, err := root.Parse(body)
	if err != nil {
		return nil, err
	}

	return &markdownTemplate{
		meta:   meta,
		tmpl:   tmpl,
		name:   name,
		md:     e.md,
		layout: e.cfg.layout,
	}, nil
}

type markdownTemplate struct {
	meta   map[string]any
	tmpl   *texttemplate.Template
	md     goldmark.Markdown
	layout *htmltemplate.Template
	name   string
}

// Render executes the markdown body as a text template, converts the result
// to HTML, and wraps it in the layout when one is configured. The processed
// markdown doubles as the plain-text alternative.
func (t *markdownTemplate) Render(data any) (*Result, error) {
	var source bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&source, t.name, data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	var markup bytes.Buffer
	if err := t.md.Convert(source.Bytes(), &markup); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	html := markup.String()

	if t.layout != nil {
		var wrapped bytes.Buffer
		err := t.layout.Execute(&wrapped, map[string]any{
			"Content": htmltemplate.HTML(html),
			"Meta":    t.meta,
		})
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}
		html = wrapped.String()
	}

	return &Result{
		HTML: html,
		Text: source.String(),
		Meta: t.meta,
	}, nil
}
