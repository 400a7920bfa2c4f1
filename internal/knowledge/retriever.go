package knowledge

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DefaultLimit is the maximum number of entries a retrieval returns unless
// the caller asks for fewer.
const DefaultLimit = 5

// Entry is one ranked retrieval result. Entries are derived per query and
// never cached: the tree is small enough for a linear scan.
type Entry struct {
	// Key is "category" for scalar leaves or "category.sub" for nested ones.
	Key string
	// Content is the leaf text, or its JSON rendering for mapping leaves.
	Content string
	// Raw is the untouched leaf value.
	Raw any
	// Score is the relevance rank in [0,1]. Gated entries may legitimately
	// score 0; the gate decides inclusion, the score only orders survivors.
	Score float64
}

// Keyword sets driving the category gates.
var (
	pricingKeywords = []string{"price", "pricing", "cost", "plan", "plans", "basic", "pro"}
	policyKeywords  = []string{"refund", "support", "policy", "policies"}
)

const (
	pricingCategory = "pricing"
	policyCategory  = "policies"
)

// Retriever scans a Tree for entries relevant to a query. The zero value is
// ready to use; it holds no state between calls.
type Retriever struct{}

// NewRetriever returns a Retriever.
func NewRetriever() *Retriever {
	return &Retriever{}
}

// Retrieve returns entries relevant to query, descending by score, at most
// limit long (DefaultLimit when limit <= 0). The relevance gate is a hard
// filter; entries failing it are excluded entirely rather than scored zero.
// An empty result means "no match", never an error.
//
// Categories and sub-items are visited in sorted key order so identical
// (query, tree) inputs always produce identical output; the sort is stable,
// so score ties keep that encounter order.
func (r *Retriever) Retrieve(query string, tree Tree, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	lower := strings.ToLower(query)
	tokens := strings.Fields(lower)

	var entries []Entry
	for _, key := range sortedKeys(tree) {
		switch value := tree[key].(type) {
		case map[string]any:
			for _, sub := range sortedKeys(value) {
				leaf := value[sub]
				if !isRelevant(lower, tokens, key, sub, leaf) {
					continue
				}
				entries = append(entries, Entry{
					Key:     key + "." + sub,
					Content: leafContent(leaf),
					Raw:     leaf,
					Score:   relevance(lower, tokens, key, sub, leaf),
				})
			}
		case string:
			if !isRelevant(lower, tokens, key, "", value) {
				continue
			}
			entries = append(entries, Entry{
				Key:     key,
				Content: value,
				Raw:     value,
				Score:   relevance(lower, tokens, key, "", value),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// isRelevant is the hard inclusion gate. An entry passes when the query hits
// its category's keyword set, shares lexical material with its sub-key, or
// shares a token with its leaf text.
func isRelevant(query string, tokens []string, mainKey, subKey string, value any) bool {
	if containsAnyKeyword(query, pricingKeywords) && mainKey == pricingCategory {
		return true
	}
	if containsAnyKeyword(query, policyKeywords) && mainKey == policyCategory {
		return true
	}

	if subKey != "" {
		subLower := strings.ToLower(subKey)
		if strings.Contains(query, subLower) || anyTokenIn(tokens, subLower) {
			return true
		}
	}

	if text, ok := value.(string); ok && anyTokenIn(tokens, strings.ToLower(text)) {
		return true
	}

	return false
}

// relevance ranks a gated entry in [0,1]. Weights: 0.8 for the sub-key
// appearing verbatim in the query, 0.3 per query token inside the sub-key,
// 0.5 for the category name appearing in the query, 0.2 per query token
// inside a scalar leaf's text.
func relevance(query string, tokens []string, mainKey, subKey string, value any) float64 {
	if len(tokens) == 0 {
		return 0
	}

	score := 0.0
	if subKey != "" {
		subLower := strings.ToLower(subKey)
		if strings.Contains(query, subLower) {
			score += 0.8
		}
		for _, tok := range tokens {
			if strings.Contains(subLower, tok) {
				score += 0.3
			}
		}
	}

	if strings.Contains(query, strings.ToLower(mainKey)) {
		score += 0.5
	}

	if text, ok := value.(string); ok {
		textLower := strings.ToLower(text)
		for _, tok := range tokens {
			if strings.Contains(textLower, tok) {
				score += 0.2
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func leafContent(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

func containsAnyKeyword(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

func anyTokenIn(tokens []string, s string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
