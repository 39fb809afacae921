// Package formatter turns page.Metadata into <head> markup: the <title>
// element, <meta> tags grouped by category, canonical/alternate/oEmbed
// <link> tags and the attribute lists of the <html> and <head> elements.
//
// Meta names and contents are stripped of tags and entity-encoded for the
// configured charset (HTML 4.01 named references, double quotes encoded,
// single quotes kept). The title is stripped of tags and only the
// markup-significant characters are escaped. Attribute lists, link targets
// and hreflang values are emitted verbatim and must come from trusted input.
//
// Helpers are registered under the "sonata_seo" prefix, either on a
// template.HelperRegistrar (see the gotemplate engine) or through FuncMap
// for html/template.
package formatter
