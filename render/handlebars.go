package render

import (
	"errors"

	"github.com/aymerick/raymond"
)

type handlebarsEngine struct {
	cfg engineConfig
}

func newHandlebarsEngine(cfg engineConfig) (engine, error) {
	return &handlebarsEngine{cfg: cfg}, nil
}

func (e *handlebarsEngine) Ext() string { return ".hbs" }

func (e *handlebarsEngine) Compile(name string, src []byte) (Template, error) {
	tpl, err := raymond.Parse(string(src))
	if err != nil {
		return nil, err
	}
	// Helpers and partials are registered per-template; the global raymond
	// registry would panic on duplicate names across services.
	if len(e.cfg.helpers) > 0 {
		tpl.RegisterHelpers(e.cfg.helpers)
	}
	for pname, psrc := range e.cfg.partials {
		tpl.RegisterPartial(pname, psrc)
	}
	return &handlebarsTemplate{tpl: tpl}, nil
}

type handlebarsTemplate struct {
	tpl *raymond.Template
}

func (t *handlebarsTemplate) Render(data any) (*Result, error) {
	out, err := t.tpl.Exec(data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return &Result{HTML: out}, nil
}
