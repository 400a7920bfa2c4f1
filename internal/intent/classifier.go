// Package intent classifies raw user utterances into coarse conversational
// intents and extracts lightweight entity tags. Classification is a fixed,
// priority-ordered pattern table, not a learned model: the same table is
// shared by every conversation and never changes at runtime.
package intent

import (
	"regexp"
	"strings"
)

// Intent is a coarse category of user purpose.
type Intent string

const (
	// Greet covers salutations with no actionable request.
	Greet Intent = "GREET"
	// Inquiry covers questions about pricing, plans, features, and policies.
	Inquiry Intent = "INQUIRY"
	// HighIntent covers strong purchase/signup signals that start the
	// lead-qualification dialogue.
	HighIntent Intent = "HIGH_INTENT"
)

// confirmations are bare acknowledgements that read as "go on, tell me more".
// They match nothing in the pattern table but must not fall through to GREET.
var confirmations = map[string]bool{
	"yes":         true,
	"yes tell me": true,
	"ok":          true,
	"okay":        true,
}

var greetPatterns = compileAll(
	`\bhi\b`,
	`\bhello\b`,
	`\bhey\b`,
	`\bhowdy\b`,
	`\bgreetings\b`,
	`\bgood morning\b`,
	`\bgood afternoon\b`,
	`\bgood evening\b`,
)

var inquiryPatterns = compileAll(
	`\bprice\b`,
	`\bpricing\b`,
	`\bplan\b`,
	`\bplans\b`,
	`\bfeatures\b`,
	`\bcost\b`,
	`\bhow much\b`,
	`\bwhat does.*cost\b`,
	`\bdo you offer\b`,
	`\bwhat do you have\b`,
	`\btell me about\b`,
	`\binformation about\b`,
)

// highIntentPatterns are checked before every other group. An utterance like
// "hi, I want to try Pro" carries both a greeting and a purchase signal, and
// the purchase signal must win.
var highIntentPatterns = compileAll(
	`\bi want to try\b`,
	`\bsign up\b`,
	`\bsignup\b`,
	`\bbuy\b`,
	`\bpurchase\b`,
	`\border\b`,
	`\bget started\b`,
	`\bstart trial\b`,
	`\bfree trial\b`,
	`\buse for youtube\b`,
	`\buse for.*video\b`,
	`\bmy youtube\b`,
	`\bmy instagram\b`,
	`\bmy tiktok\b`,
	`\bmy facebook\b`,
	`\bmy linkedin\b`,
	`\bfor my youtube\b`,
	`\bfor my instagram\b`,
	`\bfor my tiktok\b`,
	`\bready to buy\b`,
	`\bwant to purchase\b`,
	`\binterested in\b`,
	`\bready to start\b`,
	`\blet's start\b`,
	`\bcreate account\b`,
	`\bregister\b`,
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// Classifier maps free text to an Intent. The zero value is ready to use;
// all instances share the same static pattern table.
type Classifier struct{}

// NewClassifier returns a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the intent of text. It never fails: when nothing matches,
// the fallback is Greet. HIGH_INTENT patterns are tested first and win on
// first match, so mixed utterances resolve to the business intent.
func (c *Classifier) Classify(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))

	if confirmations[lower] {
		return Inquiry
	}

	for _, p := range highIntentPatterns {
		if p.MatchString(lower) {
			return HighIntent
		}
	}
	for _, p := range greetPatterns {
		if p.MatchString(lower) {
			return Greet
		}
	}
	for _, p := range inquiryPatterns {
		if p.MatchString(lower) {
			return Inquiry
		}
	}

	return Greet
}

// ExtractEntities pulls coarse topic/plan/feature/action tags from text via
// independent keyword membership tests. Tags are auxiliary context only and
// never influence intent dispatch. A key is present only when one of its
// trigger keywords was found.
func (c *Classifier) ExtractEntities(text string) map[string]string {
	entities := make(map[string]string)
	lower := strings.ToLower(text)

	if containsAny(lower, "price", "pricing", "cost") {
		entities["topic"] = "pricing"
	}

	if strings.Contains(lower, "basic") {
		entities["plan"] = "basic"
	} else if strings.Contains(lower, "pro") {
		entities["plan"] = "pro"
	}

	if strings.Contains(lower, "video") {
		entities["feature"] = "video"
	} else if strings.Contains(lower, "resolution") {
		entities["feature"] = "resolution"
	} else if strings.Contains(lower, "captions") {
		entities["feature"] = "captions"
	}

	if containsAny(lower, "buy", "purchase", "order") {
		entities["action"] = "purchase"
	} else if containsAny(lower, "try", "trial", "start") {
		entities["action"] = "trial"
	}

	return entities
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
