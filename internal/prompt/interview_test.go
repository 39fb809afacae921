package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-seo/pkg/page"
)

type fakeDriver struct {
	inputs   []string
	selected int
	err      error
	asked    []InputConfig
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg)
	if d.err != nil {
		return "", d.err
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *fakeDriver) Select(context.Context, SelectConfig) (int, error) {
	return d.selected, nil
}

func TestInterviewUpdatesPage(t *testing.T) {
	p := page.New().SetTitle("Draft")
	driver := &fakeDriver{
		inputs:   []string{" Launch ", "https://example.com/launch"},
		selected: 4,
	}

	if err := Interview(context.Background(), driver, p); err != nil {
		t.Fatalf("interview: %v", err)
	}
	if p.Title() != "Launch" {
		t.Fatalf("unexpected title %q", p.Title())
	}
	if p.LinkCanonical() != "https://example.com/launch" {
		t.Fatalf("unexpected canonical %q", p.LinkCanonical())
	}
	meta, ok := p.Metas()[page.CategoryName].Get("robots")
	if !ok || meta.Content != "noindex, nofollow" {
		t.Fatalf("unexpected robots meta %#v", meta)
	}
	if driver.asked[0].Default != "Draft" {
		t.Fatalf("expected current title as default, got %q", driver.asked[0].Default)
	}
}

func TestInterviewKeepRobots(t *testing.T) {
	p := page.New()
	driver := &fakeDriver{inputs: []string{"Home", ""}, selected: 0}

	if err := Interview(context.Background(), driver, p); err != nil {
		t.Fatalf("interview: %v", err)
	}
	if p.HasMeta(page.CategoryName, "robots") {
		t.Fatalf("expected robots meta to be left alone")
	}
}

func TestInterviewPropagatesAbort(t *testing.T) {
	driver := &fakeDriver{err: ErrAborted}
	if err := Interview(context.Background(), driver, page.New()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestValidateCanonical(t *testing.T) {
	for _, ok := range []string{"", "  ", "https://example.com", "http://example.com/a?b=c"} {
		if err := ValidateCanonical(ok); err != nil {
			t.Errorf("expected %q to be valid: %v", ok, err)
		}
	}
	for _, bad := range []string{"/relative", "ftp://example.com", "https://"} {
		if err := ValidateCanonical(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
