package template

import (
	"io"
)

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract so head markup can be rendered by whichever engine the host
// application already runs.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// HelperRegistrar accepts zero-argument helpers whose output is trusted
// markup. Engines must not escape the returned string.
type HelperRegistrar interface {
	RegisterHelper(name string, fn func() string) error
}

// Engine is a renderer that also accepts markup helpers.
type Engine interface {
	TemplateRenderer
	HelperRegistrar
}
