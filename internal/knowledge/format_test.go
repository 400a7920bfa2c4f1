package knowledge

import (
	"strings"
	"testing"
)

func TestFormatEntries_Empty(t *testing.T) {
	got := FormatEntries("quantum pricing", nil)
	want := "I don't have specific information about 'quantum pricing' in my knowledge base."
	if got != want {
		t.Fatalf("FormatEntries(empty) = %q, want %q", got, want)
	}
}

func TestFormatEntries_Plan(t *testing.T) {
	entries := []Entry{{
		Key: "pricing.Pro",
		Raw: map[string]any{
			"price":      "$79/month",
			"videos":     50,
			"resolution": "1080p",
			"features":   []any{"captions", "scheduling"},
		},
	}}

	got := FormatEntries("pro plan", entries)
	want := "Pro Plan:\nPrice: $79/month\nVideos: 50\nResolution: 1080p\nFeatures: captions, scheduling"
	if got != want {
		t.Fatalf("FormatEntries(plan) = %q, want %q", got, want)
	}
}

func TestFormatEntries_PolicyAndJoin(t *testing.T) {
	entries := []Entry{
		{Key: "policies.refund", Content: "30-day money back guarantee."},
		{Key: "faq", Content: "See the website."},
	}

	got := FormatEntries("refund", entries)
	if !strings.HasPrefix(got, "Refund: 30-day money back guarantee.") {
		t.Fatalf("policy entry not title-cased: %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Fatalf("multiple entries not blank-line separated: %q", got)
	}
	if !strings.HasSuffix(got, "faq: See the website.") {
		t.Fatalf("scalar entry formatting wrong: %q", got)
	}
}

func TestBuildContextAndSources(t *testing.T) {
	entries := []Entry{
		{Key: "pricing.Pro", Content: "pro stuff"},
		{Key: "policies.refund", Content: "refund stuff"},
	}

	ctx := BuildContext("INQUIRY", entries)
	want := "Intent: INQUIRY\npricing.Pro: pro stuff\npolicies.refund: refund stuff"
	if ctx != want {
		t.Fatalf("BuildContext() = %q, want %q", ctx, want)
	}

	src := Sources(entries)
	if len(src) != 2 || src[0] != "pricing.Pro" || src[1] != "policies.refund" {
		t.Fatalf("Sources() = %v", src)
	}
}
