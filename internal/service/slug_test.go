package service

import (
	"context"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Spaces  ", "trimmed-spaces"},
		{"Special!@#Chars", "specialchars"},
		{"double--dash", "double-dash"},
		{"UPPER case", "upper-case"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	taken := map[string]bool{"widget": true, "widget-1": true}
	exists := func(ctx context.Context, slug string) (bool, error) {
		return taken[slug], nil
	}

	slug, err := uniqueSlug(context.Background(), "Widget", exists)
	if err != nil {
		t.Fatalf("uniqueSlug failed: %v", err)
	}
	if slug != "widget-2" {
		t.Errorf("got %q, want widget-2", slug)
	}
}

func TestUniqueSlugKeepsFreeSlug(t *testing.T) {
	exists := func(ctx context.Context, slug string) (bool, error) {
		return false, nil
	}

	slug, err := uniqueSlug(context.Background(), "Brand New", exists)
	if err != nil {
		t.Fatalf("uniqueSlug failed: %v", err)
	}
	if slug != "brand-new" {
		t.Errorf("got %q, want brand-new", slug)
	}
}
