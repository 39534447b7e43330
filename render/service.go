package render

import (
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Config configures the render service. Supplied once at construction and
// immutable afterwards.
type Config struct {
	// FS is the template root filesystem (os.DirFS or an embed.FS).
	FS fs.FS
	// Engine selects the template engine for every view this service owns.
	Engine EngineKind
	// Dir is the directory under FS holding the views. Default: ".".
	Dir string
	// Layout is an optional html/template path (under FS) that wraps the
	// markdown engine's output; ignored by the other engines.
	Layout string
	// Partials maps partial names to paths under Dir. Sources are loaded
	// once at construction and registered with every compiled view.
	Partials map[string]string
	// Helpers maps helper names to pure functions available inside views.
	Helpers map[string]any
}

// Service resolves template names to compiled views and renders them
// against bound data. The compiled-template cache is write-once per key and
// never invalidated; concurrent compiles of the same key are collapsed.
type Service struct {
	fs     fs.FS
	engine engine
	cache  map[string]Template
	group  singleflight.Group
	kind   EngineKind
	dir    string
	mu     sync.RWMutex
}

// NewService creates a render service for one engine. Partial and layout
// sources are loaded here so misconfiguration fails before the first send.
func NewService(cfg Config) (*Service, error) {
	if cfg.FS == nil {
		return nil, fmt.Errorf("%w: template filesystem is required", ErrInvalidConfig)
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	build, ok := engines[cfg.Engine]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}

	ec := engineConfig{helpers: cfg.Helpers}
	if len(cfg.Partials) > 0 {
		ec.partials = make(map[string]string, len(cfg.Partials))
		for name, p := range cfg.Partials {
			resolved := path.Join(cfg.Dir, p)
			src, err := fs.ReadFile(cfg.FS, resolved)
			if err != nil {
				return nil, fmt.Errorf("%w: partial %q: %s", ErrTemplateNotFound, name, resolved)
			}
			ec.partials[name] = string(src)
		}
	}
	if cfg.Layout != "" {
		src, err := fs.ReadFile(cfg.FS, cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("%w: layout: %s", ErrTemplateNotFound, cfg.Layout)
		}
		layout, err := htmltemplate.New(path.Base(cfg.Layout)).Parse(string(src))
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}
		ec.layout = layout
	}

	eng, err := build(ec)
	if err != nil {
		return nil, err
	}

	return &Service{
		fs:     cfg.FS,
		engine: eng,
		kind:   cfg.Engine,
		dir:    cfg.Dir,
		cache:  make(map[string]Template),
	}, nil
}

// Render resolves the named view, compiling and caching it on first use,
// and executes it against data. Rendering the same (name, data) pair is
// deterministic and never mutates existing cache entries.
func (s *Service) Render(name string, data any) (*Result, error) {
	tmpl, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return tmpl.Render(data)
}

func (s *Service) lookup(name string) (Template, error) {
	resolved := s.resolve(name)
	key := string(s.kind) + ":" + resolved

	s.mu.RLock()
	tmpl, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	// Collapse concurrent compiles of the same key; the winner's result is
	// shared, so the cache stays write-once.
	v, err, _ := s.group.Do(key, func() (any, error) {
		s.mu.RLock()
		cached, ok := s.cache[key]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		src, err := fs.ReadFile(s.fs, resolved)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, resolved)
		}

		compiled, err := s.engine.Compile(name, src)
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}

		s.mu.Lock()
		s.cache[key] = compiled
		s.mu.Unlock()
		return compiled, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Template), nil
}

// resolve joins the root directory, the view name, and the engine's file
// extension. Names that already carry an extension are used as-is.
func (s *Service) resolve(name string) string {
	if path.Ext(name) == "" {
		name += s.engine.Ext()
	}
	return path.Join(s.dir, name)
}
