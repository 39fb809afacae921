package formatter

import (
	"fmt"
	htmltemplate "html/template"

	"github.com/goliatone/go-seo/pkg/render/template"
)

// Helper is a named template binding backed by a formatter method.
type Helper struct {
	Name string
	// Attribute marks helpers rendering inside an element's start tag.
	Attribute bool
	Render    func() string
}

// Helpers returns the template bindings in a stable order. Names follow the
// `sonata_seo_*` convention used by existing layouts.
func (f *Formatter) Helpers() []Helper {
	return []Helper{
		{Name: Name + "_title", Render: f.Title},
		{Name: Name + "_metadatas", Render: f.Metadatas},
		{Name: Name + "_html_attributes", Attribute: true, Render: f.HTMLAttributes},
		{Name: Name + "_head_attributes", Attribute: true, Render: f.HeadAttributes},
		{Name: Name + "_link_canonical", Render: f.LinkCanonical},
		{Name: Name + "_lang_alternates", Render: f.LangAlternates},
		{Name: Name + "_oembed_links", Render: f.OEmbedLinks},
	}
}

// HelperMap returns the helpers keyed by name.
func (f *Formatter) HelperMap() map[string]func() string {
	helpers := f.Helpers()
	out := make(map[string]func() string, len(helpers))
	for _, helper := range helpers {
		out[helper.Name] = helper.Render
	}
	return out
}

// Register binds every helper on registrar.
func (f *Formatter) Register(registrar template.HelperRegistrar) error {
	if registrar == nil {
		return fmt.Errorf("formatter: registrar is required")
	}
	for _, helper := range f.Helpers() {
		if err := registrar.RegisterHelper(helper.Name, helper.Render); err != nil {
			return fmt.Errorf("formatter: register %s: %w", helper.Name, err)
		}
	}
	return nil
}

// FuncMap exposes the helpers to html/template. Attribute helpers return
// template.HTMLAttr so they can be placed inside a start tag.
func (f *Formatter) FuncMap() htmltemplate.FuncMap {
	funcs := htmltemplate.FuncMap{}
	for _, helper := range f.Helpers() {
		render := helper.Render
		if helper.Attribute {
			funcs[helper.Name] = func() htmltemplate.HTMLAttr {
				return htmltemplate.HTMLAttr(render())
			}
			continue
		}
		funcs[helper.Name] = func() htmltemplate.HTML {
			return htmltemplate.HTML(render())
		}
	}
	return funcs
}
