package intent

import (
	"reflect"
	"testing"
)

func TestClassify_Table(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		text string
		want Intent
	}{
		{"hi", Greet},
		{"Hello there", Greet},
		{"good morning!", Greet},
		{"what are your plans?", Inquiry},
		{"how much does it cost", Inquiry},
		{"tell me about the Pro plan", Inquiry},
		{"do you offer captions?", Inquiry},
		{"I want to try the Pro plan", HighIntent},
		{"sign up", HighIntent},
		{"ready to buy now", HighIntent},
		{"I need this for my YouTube channel", HighIntent},
		{"let's start", HighIntent},
		{"asdf qwerty", Greet}, // fallback, not an error
		{"", Greet},
	}

	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

func TestClassify_HighIntentBeatsGreet(t *testing.T) {
	c := NewClassifier()

	// Utterances carrying both a greeting word and a purchase signal must
	// resolve to HIGH_INTENT regardless of word order.
	mixed := []string{
		"hi, I want to try Pro",
		"hello, sign up please",
		"hey there, ready to buy",
		"good morning, interested in the Pro plan",
	}
	for _, text := range mixed {
		if got := c.Classify(text); got != HighIntent {
			t.Errorf("Classify(%q) = %s, want %s", text, got, HighIntent)
		}
	}
}

func TestClassify_BareConfirmations(t *testing.T) {
	c := NewClassifier()

	for _, text := range []string{"yes", "yes tell me", "ok", "okay", " OK "} {
		if got := c.Classify(text); got != Inquiry {
			t.Errorf("Classify(%q) = %s, want %s", text, got, Inquiry)
		}
	}

	// Confirmation words embedded in longer utterances do not short-circuit.
	if got := c.Classify("okay what plans do you have"); got != Inquiry {
		t.Errorf("Classify(long okay) = %s, want %s via pattern match", got, Inquiry)
	}
}

func TestExtractEntities(t *testing.T) {
	c := NewClassifier()

	got := c.ExtractEntities("How much does the Pro plan cost for video?")
	want := map[string]string{
		"topic":   "pricing",
		"plan":    "pro",
		"feature": "video",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractEntities() = %#v, want %#v", got, want)
	}

	got = c.ExtractEntities("I want to buy the basic one")
	want = map[string]string{
		"plan":   "basic",
		"action": "purchase",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractEntities() = %#v, want %#v", got, want)
	}

	if got := c.ExtractEntities("nothing relevant here"); len(got) != 0 {
		t.Fatalf("ExtractEntities(no keywords) = %#v, want empty", got)
	}
}
