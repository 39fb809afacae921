package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-seo/pkg/formatter"
	"github.com/goliatone/go-seo/pkg/page"
	"github.com/goliatone/go-seo/pkg/render/template/gotemplate"
	"github.com/goliatone/go-seo/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"site": map[string]any{"name": "go-seo"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, _ := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("use-filter", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "use-filter.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_FormatterHelpers(t *testing.T) {
	engine := newEngine(t)

	f, err := formatter.New(page.New().SetTitle("<b>Docs</b> & Guides"), "UTF-8")
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}
	if err := f.Register(engine); err != nil {
		t.Fatalf("register helpers: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("head.tpl", nil, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "head.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_HelpersBypassAutoescape(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{}),
		gotemplate.WithHelpers(map[string]func() string{
			"markup": func() string { return `<meta charset="UTF-8" />` },
		}),
		gotemplate.WithGlobalData(map[string]any{"raw": "<b>"}),
		gotemplate.WithGoTemplateOptions(),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("{{ markup() }}|{{ raw }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if want := `<meta charset="UTF-8" />|&lt;b&gt;`; got != want {
		t.Fatalf("render string mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestGoTemplateEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}

	engine := newEngine(t)
	if err := engine.RegisterHelper(" ", func() string { return "" }); err == nil {
		t.Fatalf("expected error for blank helper name")
	}
}

func TestGoTemplateEngine_AcceptsGoTemplateOptions(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{
			"plain.tpl": {Data: []byte("{{ name }}")},
		}),
		gotemplate.WithGoTemplateOptions(),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("plain", map[string]any{"name": "seo"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "seo" {
		t.Fatalf("unexpected output %q", got)
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
