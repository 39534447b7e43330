package render

import (
	"bytes"
	"errors"
	htmltemplate "html/template"
)

type goEngine struct {
	cfg engineConfig
}

func newGoEngine(cfg engineConfig) (engine, error) {
	return &goEngine{cfg: cfg}, nil
}

func (e *goEngine) Ext() string { return ".html" }

func (e *goEngine) Compile(name string, src []byte) (Template, error) {
	root := htmltemplate.New(name)
	if len(e.cfg.helpers) > 0 {
		root = root.Funcs(htmltemplate.FuncMap(e.cfg.helpers))
	}
	for pname, psrc := range e.cfg.partials {
		if _, err := root.New(pname).Parse(psrc); err != nil {
			return nil, err
		}
	}
	tmpl, err := root.Parse(string(src))
	if err != nil {
		return nil, err
	}
	return &goTemplate{tmpl: tmpl, name: name}, nil
}

type goTemplate struct {
	tmpl *htmltemplate.Template
	name string
}

func (t *goTemplate) Render(data any) (*Result, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, t.name, data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return &Result{HTML: buf.String()}, nil
}
