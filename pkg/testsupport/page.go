package testsupport

import (
	"github.com/goliatone/go-seo/pkg/page"
)

// Page is a hand-written page.Metadata fake. Zero-valued fields read as
// empty; Calls counts getter invocations so tests can assert a formatter
// touched only what it needed.
type Page struct {
	TitleValue          string
	MetasValue          map[string]*page.Ordered[page.Meta]
	LinkCanonicalValue  string
	LangAlternatesValue *page.Ordered[string]
	OEmbedLinksValue    *page.Ordered[string]
	HTMLAttributesValue *page.Ordered[string]
	HeadAttributesValue *page.Ordered[string]

	Calls map[string]int
}

var _ page.Metadata = (*Page)(nil)

func (p *Page) Title() string {
	p.record("Title")
	return p.TitleValue
}

func (p *Page) Metas() map[string]*page.Ordered[page.Meta] {
	p.record("Metas")
	return p.MetasValue
}

func (p *Page) LinkCanonical() string {
	p.record("LinkCanonical")
	return p.LinkCanonicalValue
}

func (p *Page) LangAlternates() *page.Ordered[string] {
	p.record("LangAlternates")
	return p.LangAlternatesValue
}

func (p *Page) OEmbedLinks() *page.Ordered[string] {
	p.record("OEmbedLinks")
	return p.OEmbedLinksValue
}

func (p *Page) HTMLAttributes() *page.Ordered[string] {
	p.record("HTMLAttributes")
	return p.HTMLAttributesValue
}

func (p *Page) HeadAttributes() *page.Ordered[string] {
	p.record("HeadAttributes")
	return p.HeadAttributesValue
}

func (p *Page) record(name string) {
	if p.Calls == nil {
		p.Calls = make(map[string]int)
	}
	p.Calls[name]++
}

// Metas builds a category map for fakes. Each entry is a category followed
// by alternating name/content pairs.
func Metas(entries map[string][]string) map[string]*page.Ordered[page.Meta] {
	out := make(map[string]*page.Ordered[page.Meta], len(entries))
	for category, pairs := range entries {
		ordered := page.NewOrdered[page.Meta]()
		for i := 0; i+1 < len(pairs); i += 2 {
			ordered.Set(pairs[i], page.Meta{Content: pairs[i+1]})
		}
		out[category] = ordered
	}
	return out
}
