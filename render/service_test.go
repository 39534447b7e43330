package render

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestService_Render_GoEngine(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"emails/welcome.html": &fstest.MapFile{
			Data: []byte(`<p>Hello {{.Name}}</p>`),
		},
	}
	svc, err := NewService(Config{Engine: EngineGo, FS: mapFS, Dir: "emails"})
	require.NoError(t, err)

	result, err := svc.Render("welcome", map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	require.Equal(t, "<p>Hello Ada</p>", result.HTML)
	require.Empty(t, result.Text)
}

func TestService_Render_GoEngine_HelpersAndPartials(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"welcome.html": &fstest.MapFile{
			Data: []byte(`{{template "header" .}}<p>{{upper .Name}}</p>`),
		},
		"partials/header.html": &fstest.MapFile{
			Data: []byte(`<h1>Acme</h1>`),
		},
	}
	svc, err := NewService(Config{
		Engine:   EngineGo,
		FS:       mapFS,
		Partials: map[string]string{"header": "partials/header.html"},
		Helpers: map[string]any{
			"upper": func(s string) string {
				out := []rune(s)
				for i, r := range out {
					if r >= 'a' && r <= 'z' {
						out[i] = r - 32
					}
				}
				return string(out)
			},
		},
	})
	require.NoError(t, err)

	result, err := svc.Render("welcome", map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	require.Equal(t, "<h1>Acme</h1><p>ADA</p>", result.HTML)
}

func TestService_Render_HandlebarsEngine(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"welcome.hbs": &fstest.MapFile{
			Data: []byte(`{{> header}}<p>Hello {{shout name}}</p>`),
		},
		"header.hbs": &fstest.MapFile{
			Data: []byte(`<h1>Acme</h1>`),
		},
	}
	svc, err := NewService(Config{
		Engine:   EngineHandlebars,
		FS:       mapFS,
		Partials: map[string]string{"header": "header.hbs"},
		Helpers: map[string]any{
			"shout": func(s string) string { return s + "!" },
		},
	})
	require.NoError(t, err)

	result, err := svc.Render("welcome", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	require.Equal(t, "<h1>Acme</h1><p>Hello Ada!</p>", result.HTML)
}

func TestService_Render_MarkdownEngine(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"welcome.md": &fstest.MapFile{
			Data: []byte("---\nsubject: Welcome aboard\n---\nHello **{{.Name}}**!\n\n[!button|Get started](https://example.com/start)\n"),
		},
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
	}
	svc, err := NewService(Config{
		Engine: EngineMarkdown,
		FS:     mapFS,
		Layout: "layouts/base.html",
	})
	require.NoError(t, err)

	result, err := svc.Render("welcome", map[string]string{"Name": "Ada"})
	require.NoError(t, err)

	require.Equal(t, "Welcome aboard", result.Meta["subject"])
	require.Contains(t, result.HTML, "<strong>Ada</strong>")
	require.Contains(t, result.HTML, `href="https://example.com/start"`)
	require.Contains(t, result.HTML, "<html><body>")
	require.Contains(t, result.Text, "Hello **Ada**!")
	require.NotContains(t, result.Text, "<strong>")
}

func TestService_Render_TemplateNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(Config{Engine: EngineGo, FS: fstest.MapFS{}, Dir: "emails"})
	require.NoError(t, err)

	_, err = svc.Render("missing", nil)

	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.ErrorContains(t, err, "emails/missing.html")
}

func TestService_Render_CompileErrorWrapsRenderFailed(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"broken.hbs": &fstest.MapFile{
			Data: []byte(`{{#if}`),
		},
	}
	svc, err := NewService(Config{Engine: EngineHandlebars, FS: mapFS})
	require.NoError(t, err)

	_, err = svc.Render("broken", nil)

	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestNewService_UnknownEngine(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{Engine: EngineKind("jade"), FS: fstest.MapFS{}})

	require.ErrorIs(t, err, ErrUnknownEngine)
	require.ErrorContains(t, err, "jade")
}

func TestNewService_RequiresFilesystem(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{Engine: EngineGo})

	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewService_MissingPartialFailsFast(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{
		Engine:   EngineGo,
		FS:       fstest.MapFS{},
		Partials: map[string]string{"header": "partials/header.html"},
	})

	require.ErrorIs(t, err, ErrTemplateNotFound)
}

// countingFS counts file reads to observe cache behavior.
type countingFS struct {
	fstest.MapFS
	reads *atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}

func TestService_Render_CompilesOnce(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32
	cfs := &countingFS{
		MapFS: fstest.MapFS{
			"welcome.html": &fstest.MapFile{
				Data: []byte(`<p>Hello {{.Name}}</p>`),
			},
		},
		reads: &reads,
	}
	svc, err := NewService(Config{Engine: EngineGo, FS: cfs})
	require.NoError(t, err)

	first, err := svc.Render("welcome", map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	require.Equal(t, int32(1), reads.Load())

	second, err := svc.Render("welcome", map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	require.Equal(t, int32(1), reads.Load(), "second render must hit the cache")
	require.Equal(t, first, second, "rendering the same input is deterministic")
}

func TestService_Render_ConcurrentSameTemplate(t *testing.T) {
	t.Parallel()

	mapFS := fstest.MapFS{
		"welcome.hbs": &fstest.MapFile{
			Data: []byte(`<p>Hello {{name}}</p>`),
		},
	}
	svc, err := NewService(Config{Engine: EngineHandlebars, FS: mapFS})
	require.NoError(t, err)

	const workers = 16
	outputs := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.Render("welcome", map[string]any{"name": "Ada"})
			errs[i] = err
			if err == nil {
				outputs[i] = result.HTML
			}
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		require.Equal(t, "<p>Hello Ada</p>", outputs[i])
	}
}
