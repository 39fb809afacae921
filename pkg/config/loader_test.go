package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-seo/pkg/config"
	"github.com/goliatone/go-seo/pkg/formatter"
	"github.com/goliatone/go-seo/pkg/page"
	"github.com/goliatone/go-seo/pkg/testsupport"
)

func TestLoadFileBuildsOrderedPage(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	cfg, err := config.LoadFile(filepath.Join("testdata", "seo.yaml"), config.WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Encoding != "UTF-8" {
		t.Fatalf("unexpected encoding %q", cfg.Encoding)
	}

	p := cfg.Page()
	if p.Title() != "Sonata Project" || p.Separator() != " - " {
		t.Fatalf("unexpected title/separator: %q %q", p.Title(), p.Separator())
	}
	if p.HasMeta("itemprop", "name") {
		t.Fatalf("expected unknown category to be dropped")
	}

	f, err := formatter.New(p, cfg.Encoding)
	if err != nil {
		t.Fatalf("new formatter: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "metadatas.golden"), f.Metadatas())

	wantHTML := `xmlns="http://www.w3.org/1999/xhtml" xmlns:og="http://opengraphprotocol.org/schema/"`
	if got := f.HTMLAttributes(); got != wantHTML {
		t.Fatalf("html attributes mismatch\nwant: %q\n got: %q", wantHTML, got)
	}
	if diff := cmp.Diff([]string{"https://sonata-project.org/", "https://sonata-project.org/fr"}, p.LangAlternates().Keys()); diff != "" {
		t.Fatalf("alternates mismatch (-want +got):\n%s", diff)
	}
	if got, _ := p.OEmbedLinks().Get("Sonata"); got != "https://sonata-project.org/oembed.json" {
		t.Fatalf("unexpected oembed link %q", got)
	}
	if p.LinkCanonical() != "https://sonata-project.org/" {
		t.Fatalf("unexpected canonical %q", p.LinkCanonical())
	}

	var warned []string
	for _, entry := range logs.All() {
		warned = append(warned, entry.Message)
	}
	want := []string{"dropping unknown meta category", "ignoring unknown config key"}
	if diff := cmp.Diff(want, warned); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestPageReturnsIndependentCopies(t *testing.T) {
	cfg, err := config.Parse([]byte("page:\n  title: Home\n  metas:\n    name:\n      robots: index\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	first := cfg.Page()
	first.AddTitle("Article")
	first.RemoveMeta(page.CategoryName, "robots")

	second := cfg.Page()
	if second.Title() != "Home" {
		t.Fatalf("expected pristine title, got %q", second.Title())
	}
	if !second.HasMeta(page.CategoryName, "robots") {
		t.Fatalf("expected meta to survive on a fresh page")
	}
	if second.Separator() != page.DefaultSeparator {
		t.Fatalf("expected default separator, got %q", second.Separator())
	}
}

func TestParseDefaultsEncoding(t *testing.T) {
	cfg, err := config.Parse([]byte("page:\n  title: Home\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Encoding != config.DefaultEncoding {
		t.Fatalf("expected default encoding, got %q", cfg.Encoding)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"not a mapping":   "- a\n- b\n",
		"page scalar":     "page: nope\n",
		"metas list":      "page:\n  metas: [a]\n",
		"category scalar": "page:\n  metas:\n    name: foo\n",
		"nested html":     "page:\n  html:\n    lang: {a: b}\n",
		"meta list":       "page:\n  metas:\n    name:\n      foo: [a]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.Parse([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}

	if _, err := config.Parse([]byte("  \n")); !errors.Is(err, config.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "seo.yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	fsys := fstest.MapFS{"seo.yaml": &fstest.MapFile{Data: data}}

	cfg, err := config.LoadFS(fsys, "seo.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if cfg.Title != "Sonata Project" {
		t.Fatalf("unexpected title %q", cfg.Title)
	}

	if _, err := config.LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := config.LoadFS(nil, "seo.yaml"); err == nil {
		t.Fatalf("expected error for nil fs")
	}
}
