package config

import (
	"github.com/goliatone/go-seo/pkg/page"
)

// DefaultEncoding is used when a document does not set one.
const DefaultEncoding = "UTF-8"

// Config holds page defaults loaded from YAML. Collections keep document
// order.
type Config struct {
	Encoding       string
	Title          string
	Separator      string
	Metas          map[string]*page.Ordered[page.Meta]
	LinkCanonical  string
	LangAlternates *page.Ordered[string]
	OEmbedLinks    *page.Ordered[string]
	HTMLAttributes *page.Ordered[string]
	HeadAttributes *page.Ordered[string]
}

// Default returns an empty configuration using DefaultEncoding.
func Default() *Config {
	return &Config{
		Encoding:       DefaultEncoding,
		Metas:          make(map[string]*page.Ordered[page.Meta]),
		LangAlternates: page.NewOrdered[string](),
		OEmbedLinks:    page.NewOrdered[string](),
		HTMLAttributes: page.NewOrdered[string](),
		HeadAttributes: page.NewOrdered[string](),
	}
}

// Page builds a fresh page seeded with the configured defaults. Each call
// returns an independent page.
func (c *Config) Page() *page.Page {
	p := page.New()
	if c == nil {
		return p
	}
	if c.Separator != "" {
		p.SetSeparator(c.Separator)
	}
	p.SetTitle(c.Title)
	p.SetLinkCanonical(c.LinkCanonical)

	for _, category := range page.Categories() {
		for name, meta := range c.Metas[category].All() {
			extras := page.NewOrdered[string]()
			for key, value := range meta.Extras.All() {
				extras.Set(key, value)
			}
			// categories come from page.Categories so AddMeta cannot fail
			_ = p.AddMeta(category, name, meta.Content, extras)
		}
	}
	for href, hreflang := range c.LangAlternates.All() {
		p.AddLangAlternate(href, hreflang)
	}
	for title, href := range c.OEmbedLinks.All() {
		p.AddOEmbedLink(title, href)
	}
	for name, value := range c.HTMLAttributes.All() {
		p.AddHTMLAttribute(name, value)
	}
	for name, value := range c.HeadAttributes.All() {
		p.AddHeadAttribute(name, value)
	}
	return p
}
