package dialogue

import "testing"

func TestExtractName(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"John", "John", true},
		{"john", "John", true},
		{"my name is John", "John", true},
		{"My Name Is sarah", "Sarah", true},
		{"I'm Alex", "Alex", true},
		{"i am Priya", "Priya", true},
		{"call me Bo2", "Bo2", true},
		{"it's Dana here", "Dana", true},
		{"John Smith", "John", true}, // first token only
		{"x", "", false},             // single char rejected
		{"", "", false},
		{"   ", "", false},
	}

	for _, tc := range cases {
		got, ok := extractName(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Errorf("extractName(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"john@example.com", "john@example.com", true},
		{"reach me at j.doe+tag@sub.example.co.uk thanks", "j.doe+tag@sub.example.co.uk", true},
		{"two a@b.com and c@d.org", "a@b.com", true}, // first match wins
		{"abc", "", false},
		{"john@example", "", false},   // no TLD
		{"john@example.c", "", false}, // TLD too short
	}

	for _, tc := range cases {
		got, ok := extractEmail(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Errorf("extractEmail(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractPlatform(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"YouTube", "Youtube", true},
		{"I post on TIKTOK mostly", "Tiktok", true},
		{"instagram and linkedin", "Instagram", true}, // vocabulary order wins
		{"my twitch channel", "Twitch", true},
		{"carrier pigeon", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := extractPlatform(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Errorf("extractPlatform(%q) = (%q, %v), want (%q, %v)", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}
