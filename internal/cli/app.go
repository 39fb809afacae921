package cli

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-seo/internal/prompt"
	"github.com/goliatone/go-seo/pkg/formatter"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// Options wires the app's collaborators; zero values use the real terminal.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Driver func() prompt.Driver
}

// NewApp builds the seo-head command tree.
func NewApp(opts Options) *cli.App {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Driver == nil {
		opts.Driver = prompt.NewSurveyDriver
	}

	return &cli.App{
		Name:      "seo-head",
		Usage:     "render SEO <head> markup from a YAML page definition",
		Version:   Version,
		Writer:    opts.Stdout,
		ErrWriter: opts.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "render a document skeleton or custom template",
				Action: renderAction(opts),
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML page definition"},
					&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "pongo2 template file (default: built-in head.tpl)"},
					&cli.StringFlag{Name: "title", Usage: "override the page title"},
					&cli.StringFlag{Name: "canonical", Usage: "override the canonical URL"},
					&cli.StringFlag{Name: "encoding", Usage: "override the output charset"},
					&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "prompt for title, canonical URL and robots"},
				},
			},
			{
				Name:  "version",
				Usage: "print the helper registration name and version",
				Action: func(c *cli.Context) error {
					_, err := io.WriteString(c.App.Writer, formatter.Name+" "+Version+"\n")
					return err
				},
			},
		},
	}
}
