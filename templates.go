package seo

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// HeadTemplate is the name of the built-in document skeleton.
const HeadTemplate = "head.tpl"

// EmbeddedTemplates exposes the built-in templates so callers can reuse or
// extend them.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
