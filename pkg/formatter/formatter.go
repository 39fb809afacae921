package formatter

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-seo/internal/logging"
	"github.com/goliatone/go-seo/pkg/page"
)

// Name is the identifier helpers are registered under in template hosts.
const Name = "sonata_seo"

// ErrNilPage is returned when New is called without page metadata.
var ErrNilPage = errors.New("formatter: page metadata is required")

// Option configures a Formatter before construction.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger attaches a logger used to report skipped input. Nil falls back
// to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Formatter renders page metadata into <head> markup fragments. It holds no
// state beyond the page reference and the target charset, so every method is
// idempotent for unchanged page data.
type Formatter struct {
	page    page.Metadata
	charset charset
	logger  *zap.Logger
}

// New builds a formatter for meta using the given charset label.
func New(meta page.Metadata, encoding string, options ...Option) (*Formatter, error) {
	if meta == nil {
		return nil, ErrNilPage
	}
	cs, err := resolveCharset(encoding)
	if err != nil {
		return nil, err
	}

	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	cfg.logger = logging.OrNop(cfg.logger)

	return &Formatter{
		page:    meta,
		charset: cs,
		logger:  cfg.logger.Named(Name),
	}, nil
}

// MustNew panics when New fails. Useful for init-time wiring.
func MustNew(meta page.Metadata, encoding string, options ...Option) *Formatter {
	f, err := New(meta, encoding, options...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the registration name of the helper set.
func (f *Formatter) Name() string {
	return Name
}

// Encoding returns the charset label the formatter was built with.
func (f *Formatter) Encoding() string {
	return f.charset.label
}

// HTMLAttributes renders the <html> element attributes as `key="value"`
// pairs separated by single spaces.
func (f *Formatter) HTMLAttributes() string {
	return joinAttributes(f.page.HTMLAttributes())
}

// HeadAttributes renders the <head> element attributes.
func (f *Formatter) HeadAttributes() string {
	return joinAttributes(f.page.HeadAttributes())
}

// Title renders the <title> element with markup stripped from the title.
func (f *Formatter) Title() string {
	return "<title>" + escapeText(stripTags(f.page.Title())) + "</title>"
}

// Metadatas renders one <meta> tag per entry, category by category.
func (f *Formatter) Metadatas() string {
	metas := f.page.Metas()
	f.reportUnknownCategories(metas)

	var b strings.Builder
	for _, category := range page.Categories() {
		for name, meta := range metas[category].All() {
			if category == page.CategoryCharset {
				b.WriteString(`<meta charset="`)
				b.WriteString(f.normalize(name))
				b.WriteString("\" />\n")
				continue
			}

			b.WriteString("<meta ")
			b.WriteString(category)
			b.WriteString(`="`)
			b.WriteString(f.normalize(name))
			b.WriteString(`" content="`)
			b.WriteString(f.normalize(meta.Content))
			b.WriteByte('"')
			for key, value := range meta.Extras.All() {
				b.WriteByte(' ')
				b.WriteString(key)
				b.WriteString(`="`)
				b.WriteString(f.normalize(value))
				b.WriteByte('"')
			}
			b.WriteString(" />\n")
		}
	}
	return b.String()
}

// LinkCanonical renders the canonical <link>, or nothing when unset.
func (f *Formatter) LinkCanonical() string {
	href := f.page.LinkCanonical()
	if href == "" {
		return ""
	}
	return `<link rel="canonical" href="` + href + "\"/>\n"
}

// LangAlternates renders one hreflang alternate <link> per entry.
func (f *Formatter) LangAlternates() string {
	var b strings.Builder
	for href, hreflang := range f.page.LangAlternates().All() {
		b.WriteString(`<link rel="alternate" href="`)
		b.WriteString(href)
		b.WriteString(`" hreflang="`)
		b.WriteString(hreflang)
		b.WriteString("\"/>\n")
	}
	return b.String()
}

// OEmbedLinks renders one oEmbed discovery <link> per entry.
func (f *Formatter) OEmbedLinks() string {
	var b strings.Builder
	for title, href := range f.page.OEmbedLinks().All() {
		b.WriteString(`<link rel="alternate" type="application/json+oembed" href="`)
		b.WriteString(href)
		b.WriteString(`" title="`)
		b.WriteString(title)
		b.WriteString("\" />\n")
	}
	return b.String()
}

func (f *Formatter) normalize(value string) string {
	if value == "" {
		return ""
	}
	return f.charset.encodeEntities(stripTags(value))
}

func (f *Formatter) reportUnknownCategories(metas map[string]*page.Ordered[page.Meta]) {
	for category, entries := range metas {
		if page.IsCategory(category) || entries.Len() == 0 {
			continue
		}
		f.logger.Debug("skipping unknown meta category",
			zap.String("category", category),
			zap.Int("entries", entries.Len()),
		)
	}
}

func joinAttributes(attrs *page.Ordered[string]) string {
	parts := make([]string, 0, attrs.Len())
	for name, value := range attrs.All() {
		parts = append(parts, name+`="`+value+`"`)
	}
	return strings.Join(parts, " ")
}
