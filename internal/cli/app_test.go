package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-seo/internal/prompt"
)

type scriptedDriver struct {
	inputs []string
}

func (d *scriptedDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 1, nil
}

func runApp(t *testing.T, driver prompt.Driver, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Options{
		Stdout: &stdout,
		Stderr: &stderr,
		Driver: func() prompt.Driver { return driver },
	})

	exiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	t.Cleanup(func() { cli.OsExiter = exiter })

	err := app.Run(append([]string{"seo-head"}, args...))
	return stdout.String(), err
}

func TestRenderFromConfig(t *testing.T) {
	out, err := runApp(t, nil,
		"render",
		"--config", filepath.Join("testdata", "page.yaml"),
		"--canonical", "https://example.com/docs",
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if got := doc.Find("title").Text(); got != "Docs" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := doc.Find(`meta[name="description"]`).AttrOr("content", ""); got != "Reference & guides" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := doc.Find(`link[rel="canonical"]`).AttrOr("href", ""); got != "https://example.com/docs" {
		t.Fatalf("unexpected canonical %q", got)
	}
	if got := doc.Find("html").AttrOr("lang", ""); got != "en" {
		t.Fatalf("unexpected lang %q", got)
	}
}

func TestRenderCustomTemplateInteractive(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"<em>Launch</em>", "https://example.com/"}}

	out, err := runApp(t, driver,
		"render",
		"--config", filepath.Join("testdata", "page.yaml"),
		"--template", filepath.Join("testdata", "custom.html"),
		"--interactive",
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "<title>Launch</title>|lang=\"en\"|<link rel=\"canonical\" href=\"https://example.com/\"/>\n\n"
	if out != want {
		t.Fatalf("custom template mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderRejectsUnknownEncoding(t *testing.T) {
	_, err := runApp(t, nil, "render", "--encoding", "klingon-8")
	if err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestRenderMissingConfig(t *testing.T) {
	_, err := runApp(t, nil, "render", "--config", filepath.Join("testdata", "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestVersion(t *testing.T) {
	out, err := runApp(t, nil, "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "sonata_seo dev\n" {
		t.Fatalf("unexpected version output %q", out)
	}
}
