package page

import (
	"fmt"
	"strings"
)

// DefaultSeparator joins title segments added with AddTitle.
const DefaultSeparator = " "

// Page is the default Metadata implementation. It is a plain value holder and
// is not safe for concurrent mutation. The zero value is usable; collections
// are allocated on first write and the separator stays empty until set.
type Page struct {
	title          string
	separator      string
	metas          map[string]*Ordered[Meta]
	linkCanonical  string
	langAlternates *Ordered[string]
	oembedLinks    *Ordered[string]
	htmlAttributes *Ordered[string]
	headAttributes *Ordered[string]
}

var _ Metadata = (*Page)(nil)

// New returns an empty page seeded with every meta category.
func New() *Page {
	metas := make(map[string]*Ordered[Meta], len(Categories()))
	for _, category := range Categories() {
		metas[category] = NewOrdered[Meta]()
	}
	return &Page{
		separator:      DefaultSeparator,
		metas:          metas,
		langAlternates: NewOrdered[string](),
		oembedLinks:    NewOrdered[string](),
		htmlAttributes: NewOrdered[string](),
		headAttributes: NewOrdered[string](),
	}
}

func (p *Page) Title() string { return p.title }

// SetTitle replaces the title.
func (p *Page) SetTitle(title string) *Page {
	p.title = title
	return p
}

// AddTitle prepends title to the current one using the separator.
func (p *Page) AddTitle(title string) *Page {
	if p.title == "" {
		p.title = title
		return p
	}
	p.title = title + p.separator + p.title
	return p
}

// Separator returns the string used by AddTitle.
func (p *Page) Separator() string { return p.separator }

// SetSeparator changes the string used by AddTitle.
func (p *Page) SetSeparator(separator string) *Page {
	p.separator = separator
	return p
}

func (p *Page) Metas() map[string]*Ordered[Meta] { return p.metas }

// AddMeta stores a meta under category. Extras are appended as attributes in
// the order given; pass nil for none.
func (p *Page) AddMeta(category, name, content string, extras *Ordered[string]) error {
	category = strings.TrimSpace(category)
	if !IsCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if extras == nil {
		extras = NewOrdered[string]()
	}
	if p.metas == nil {
		p.metas = make(map[string]*Ordered[Meta], len(Categories()))
	}
	ensure(p.metas, category).Set(name, Meta{Content: content, Extras: extras})
	return nil
}

// RemoveMeta deletes a meta. Unknown categories or names are ignored.
func (p *Page) RemoveMeta(category, name string) *Page {
	if entries, ok := p.metas[category]; ok {
		entries.Delete(name)
	}
	return p
}

// HasMeta reports whether a meta exists under category.
func (p *Page) HasMeta(category, name string) bool {
	return p.metas[category].Has(name)
}

func (p *Page) LinkCanonical() string { return p.linkCanonical }

func (p *Page) SetLinkCanonical(href string) *Page {
	p.linkCanonical = href
	return p
}

func (p *Page) RemoveLinkCanonical() *Page {
	p.linkCanonical = ""
	return p
}

func (p *Page) LangAlternates() *Ordered[string] { return p.langAlternates }

// AddLangAlternate maps href to an hreflang value such as "fr" or
// "x-default".
func (p *Page) AddLangAlternate(href, hreflang string) *Page {
	lazy(&p.langAlternates).Set(href, hreflang)
	return p
}

func (p *Page) RemoveLangAlternate(href string) *Page {
	p.langAlternates.Delete(href)
	return p
}

func (p *Page) OEmbedLinks() *Ordered[string] { return p.oembedLinks }

// AddOEmbedLink advertises a JSON oEmbed endpoint under title.
func (p *Page) AddOEmbedLink(title, href string) *Page {
	lazy(&p.oembedLinks).Set(title, href)
	return p
}

func (p *Page) HTMLAttributes() *Ordered[string] { return p.htmlAttributes }

func (p *Page) AddHTMLAttribute(name, value string) *Page {
	lazy(&p.htmlAttributes).Set(name, value)
	return p
}

func (p *Page) RemoveHTMLAttribute(name string) *Page {
	p.htmlAttributes.Delete(name)
	return p
}

func (p *Page) HeadAttributes() *Ordered[string] { return p.headAttributes }

func (p *Page) AddHeadAttribute(name, value string) *Page {
	lazy(&p.headAttributes).Set(name, value)
	return p
}

func (p *Page) RemoveHeadAttribute(name string) *Page {
	p.headAttributes.Delete(name)
	return p
}

func lazy[V any](o **Ordered[V]) *Ordered[V] {
	if *o == nil {
		*o = NewOrdered[V]()
	}
	return *o
}

func ensure(metas map[string]*Ordered[Meta], category string) *Ordered[Meta] {
	entries, ok := metas[category]
	if !ok || entries == nil {
		entries = NewOrdered[Meta]()
		metas[category] = entries
	}
	return entries
}
