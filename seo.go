package seo

import (
	"fmt"
	"io"

	"github.com/goliatone/go-seo/pkg/config"
	"github.com/goliatone/go-seo/pkg/formatter"
	"github.com/goliatone/go-seo/pkg/page"
	"github.com/goliatone/go-seo/pkg/render/template/gotemplate"
)

// Name is the registration name of the helper set.
const Name = formatter.Name

// Metadata is the read contract consumed by the formatter.
type Metadata = page.Metadata

// Page is the default Metadata implementation.
type Page = page.Page

// Formatter renders page metadata into <head> markup.
type Formatter = formatter.Formatter

// Config holds page defaults loaded from YAML.
type Config = config.Config

// NewPage returns an empty page seeded with every meta category.
func NewPage() *Page {
	return page.New()
}

// NewFormatter exposes the formatter constructor from the top-level module.
func NewFormatter(meta Metadata, encoding string, options ...formatter.Option) (*Formatter, error) {
	return formatter.New(meta, encoding, options...)
}

// LoadConfig reads page defaults from a YAML file.
func LoadConfig(path string, options ...config.Option) (*Config, error) {
	return config.LoadFile(path, options...)
}

// NewEngine builds a pongo2 engine over the embedded templates with the
// formatter's helpers registered. Extra options are applied after the
// defaults: WithBaseDir adds a disk source, WithFS replaces the embedded one.
func NewEngine(f *Formatter, options ...gotemplate.Option) (*gotemplate.Engine, error) {
	if f == nil {
		return nil, fmt.Errorf("seo: formatter is required")
	}
	opts := append([]gotemplate.Option{
		gotemplate.WithFS(EmbeddedTemplates()),
		gotemplate.WithHelpers(f.HelperMap()),
	}, options...)
	return gotemplate.New(opts...)
}

// RenderHead renders the built-in document skeleton for f.
func RenderHead(f *Formatter, out ...io.Writer) (string, error) {
	engine, err := NewEngine(f)
	if err != nil {
		return "", err
	}
	return engine.RenderTemplate(HeadTemplate, nil, out...)
}
