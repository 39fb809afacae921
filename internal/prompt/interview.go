package prompt

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-seo/pkg/page"
)

// RobotsOptions are the directives offered for the robots meta. The first
// entry leaves the page untouched.
var RobotsOptions = []string{
	"(keep)",
	"index, follow",
	"noindex, follow",
	"index, nofollow",
	"noindex, nofollow",
}

// Interview asks for the title, canonical URL and robots directive, using the
// page's current values as defaults.
func Interview(ctx context.Context, driver Driver, p *page.Page) error {
	if driver == nil || p == nil {
		return fmt.Errorf("prompt: driver and page are required")
	}

	title, err := driver.Input(ctx, InputConfig{
		Message: "Page title",
		Default: p.Title(),
	})
	if err != nil {
		return err
	}
	p.SetTitle(strings.TrimSpace(title))

	canonical, err := driver.Input(ctx, InputConfig{
		Message:   "Canonical URL",
		Default:   p.LinkCanonical(),
		Help:      "Absolute http(s) URL; leave empty to omit the canonical link.",
		Validator: ValidateCanonical,
	})
	if err != nil {
		return err
	}
	p.SetLinkCanonical(strings.TrimSpace(canonical))

	choice, err := driver.Select(ctx, SelectConfig{
		Message: "Robots directive",
		Options: RobotsOptions,
	})
	if err != nil {
		return err
	}
	if choice > 0 && choice < len(RobotsOptions) {
		return p.AddMeta(page.CategoryName, "robots", RobotsOptions[choice], nil)
	}
	return nil
}

// ValidateCanonical accepts an empty string or an absolute http(s) URL.
func ValidateCanonical(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("canonical URL must be absolute http(s), got %q", trimmed)
	}
	return nil
}
