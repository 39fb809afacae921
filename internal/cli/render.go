package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	seo "github.com/goliatone/go-seo"
	"github.com/goliatone/go-seo/internal/logging"
	"github.com/goliatone/go-seo/internal/prompt"
	"github.com/goliatone/go-seo/pkg/config"
	"github.com/goliatone/go-seo/pkg/formatter"
	"github.com/goliatone/go-seo/pkg/render/template/gotemplate"
)

func renderAction(opts Options) cli.ActionFunc {
	return func(c *cli.Context) error {
		logger, err := logging.New(c.String("log-level"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("seo-head: init logger: %v", err), 2)
		}
		defer func() { _ = logger.Sync() }()

		cfg, err := loadConfig(c.String("config"), logger)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		p := cfg.Page()
		if c.IsSet("title") {
			p.SetTitle(c.String("title"))
		}
		if c.IsSet("canonical") {
			p.SetLinkCanonical(c.String("canonical"))
		}
		encoding := cfg.Encoding
		if c.IsSet("encoding") {
			encoding = c.String("encoding")
		}

		if c.Bool("interactive") {
			if err := prompt.Interview(c.Context, opts.Driver(), p); err != nil {
				return cli.Exit(fmt.Sprintf("seo-head: %v", err), 1)
			}
		}

		f, err := formatter.New(p, encoding, formatter.WithLogger(logger))
		if err != nil {
			return cli.Exit(fmt.Sprintf("seo-head: %v", err), 1)
		}

		tpl := strings.TrimSpace(c.String("template"))
		if tpl == "" {
			_, err = seo.RenderHead(f, c.App.Writer)
		} else {
			err = renderFile(f, tpl, c)
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("seo-head: %v", err), 1)
		}

		logger.Debug("rendered head",
			zap.String("template", tpl),
			zap.String("encoding", f.Encoding()),
		)
		return nil
	}
}

func loadConfig(path string, logger *zap.Logger) (*config.Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path, config.WithLogger(logger))
}

func renderFile(f *formatter.Formatter, path string, c *cli.Context) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	engine, err := seo.NewEngine(f,
		gotemplate.WithBaseDir(filepath.Dir(abs)),
		gotemplate.WithExtension(filepath.Ext(abs)),
	)
	if err != nil {
		return err
	}
	_, err = engine.RenderTemplate(filepath.Base(abs), nil, c.App.Writer)
	return err
}
