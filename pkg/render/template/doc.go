// Package template defines the engine-agnostic seam used to expose SEO
// helpers to a host templating layer. Concrete engines live in
// subpackages.
package template
