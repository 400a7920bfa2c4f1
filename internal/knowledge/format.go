package knowledge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatEntries renders retrieved entries into the prose used as the inquiry
// response. Everything here is formatting over retrieved data only; when
// nothing was retrieved the message says so explicitly instead of inventing
// an answer.
func FormatEntries(query string, entries []Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("I don't have specific information about '%s' in my knowledge base.", query)
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		category, sub, nested := splitKey(e.Key)
		switch {
		case category == pricingCategory && nested:
			parts = append(parts, formatPlan(sub, e.Raw))
		case category == pricingCategory:
			parts = append(parts, "Pricing information: "+indentJSON(e.Raw))
		case category == policyCategory && nested:
			parts = append(parts, titleCase(sub)+": "+e.Content)
		case category == policyCategory:
			parts = append(parts, "Policies: "+indentJSON(e.Raw))
		default:
			parts = append(parts, e.Key+": "+e.Content)
		}
	}

	return strings.Join(parts, "\n\n")
}

// BuildContext renders the retrieved entries (plus the resolved intent) into
// the context string recorded on the turn state.
func BuildContext(intent string, entries []Entry) string {
	parts := make([]string, 0, len(entries)+1)
	if intent != "" {
		parts = append(parts, "Intent: "+intent)
	}
	for _, e := range entries {
		parts = append(parts, e.Key+": "+e.Content)
	}
	return strings.Join(parts, "\n")
}

// Sources lists the entry keys in rank order.
func Sources(entries []Entry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// formatPlan renders a pricing plan's fields in a fixed, readable order.
func formatPlan(name string, raw any) string {
	plan, ok := raw.(map[string]any)
	if !ok {
		return fmt.Sprintf("%s: %v", name, raw)
	}

	parts := []string{name + " Plan:"}
	if v, ok := plan["price"]; ok {
		parts = append(parts, fmt.Sprintf("Price: %v", v))
	}
	if v, ok := plan["videos"]; ok {
		parts = append(parts, fmt.Sprintf("Videos: %v", v))
	}
	if v, ok := plan["resolution"]; ok {
		parts = append(parts, fmt.Sprintf("Resolution: %v", v))
	}
	if v, ok := plan["features"]; ok {
		parts = append(parts, "Features: "+joinList(v))
	}
	return strings.Join(parts, "\n")
}

func joinList(v any) string {
	items, ok := v.([]any)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	strs := make([]string, 0, len(items))
	for _, item := range items {
		strs = append(strs, fmt.Sprintf("%v", item))
	}
	return strings.Join(strs, ", ")
}

func splitKey(key string) (category, sub string, nested bool) {
	if i := strings.Index(key, "."); i >= 0 {
		return key[:i], key[i+1:], true
	}
	return key, "", false
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
