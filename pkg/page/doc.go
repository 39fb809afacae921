// Package page defines the Metadata contract read by the formatter together
// with Page, a small value type that accumulates title, meta tags, links and
// document attributes for a single response. Every collection keeps
// insertion order so rendered markup is deterministic.
package page
