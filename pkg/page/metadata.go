package page

import "errors"

// Meta categories select the attribute name used on a <meta> tag.
const (
	CategoryHTTPEquiv = "http-equiv"
	CategoryName      = "name"
	CategorySchema    = "schema"
	CategoryCharset   = "charset"
	CategoryProperty  = "property"
)

// ErrUnknownCategory is returned when a meta is added under a category that
// is not one of the five supported groupings.
var ErrUnknownCategory = errors.New("page: unknown meta category")

// Categories returns the supported meta categories in render order.
func Categories() []string {
	return []string{
		CategoryHTTPEquiv,
		CategoryName,
		CategorySchema,
		CategoryCharset,
		CategoryProperty,
	}
}

// IsCategory reports whether name is a supported meta category.
func IsCategory(name string) bool {
	for _, category := range Categories() {
		if category == name {
			return true
		}
	}
	return false
}

// Meta is the payload of a single <meta> tag: its content plus any extra
// attributes appended after it.
type Meta struct {
	Content string
	Extras  *Ordered[string]
}

// Metadata exposes the SEO state accumulated for a page. Formatters only
// read through it; the owner is responsible for synchronising mutation.
type Metadata interface {
	Title() string
	// Metas maps a category to its ordered name → Meta entries. Missing
	// categories are treated as empty.
	Metas() map[string]*Ordered[Meta]
	LinkCanonical() string
	// LangAlternates maps href → hreflang.
	LangAlternates() *Ordered[string]
	// OEmbedLinks maps title → href.
	OEmbedLinks() *Ordered[string]
	HTMLAttributes() *Ordered[string]
	HeadAttributes() *Ordered[string]
}
