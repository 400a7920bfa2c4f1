// Package content holds the auxiliary content-template actions. These are
// pure formatting glue with no decision logic: a tagged action name picks a
// handler, the handler renders a platform template. Nothing here touches
// conversation state.
package content

import (
	"fmt"
	"strings"
	"time"
)

// Params are the inputs to a content action.
type Params struct {
	ContentType string
	Topic       string
	Platform    string
}

// Result is a rendered piece of content.
type Result struct {
	Content        string
	ContentType    string
	Platform       string
	Topic          string
	CharacterCount int
	CreatedAt      time.Time
}

// HandlerFunc renders content for one action.
type HandlerFunc func(Params) (Result, error)

// Registry dispatches action names to handlers.
type Registry struct {
	handlers map[string]HandlerFunc
}

// NewRegistry returns a Registry with the built-in "draft" action.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]HandlerFunc)}
	r.Register("draft", Draft)
	return r
}

// Register adds or replaces a handler.
func (r *Registry) Register(name string, h HandlerFunc) {
	r.handlers[name] = h
}

// Dispatch runs the named action. Unknown actions are an error, not a
// fallback.
func (r *Registry) Dispatch(action string, p Params) (Result, error) {
	h, ok := r.handlers[action]
	if !ok {
		return Result{}, fmt.Errorf("unsupported action: %s", action)
	}
	return h(p)
}

// Draft renders a social post for the target platform. Unknown platforms
// fall back to the linkedin template.
func Draft(p Params) (Result, error) {
	if strings.TrimSpace(p.Topic) == "" {
		return Result{}, fmt.Errorf("draft: topic required")
	}
	if p.ContentType == "" {
		p.ContentType = "post"
	}

	platform := strings.ToLower(p.Platform)
	var body string
	switch platform {
	case "twitter":
		body = fmt.Sprintf("🚀 Excited to share insights on %s! %s #innovation", p.Topic, hashtags(p.Topic))
	case "facebook":
		body = fmt.Sprintf("🌟 Great news! We're diving deep into %s and wanted to share some exciting developments.\n\nWhat's your experience with %s? Let us know in the comments! 👇\n\n%s",
			p.Topic, p.Topic, hashtags(p.Topic))
	default:
		platform = "linkedin"
		body = fmt.Sprintf("📈 Professional insights on %s\n\nIn today's rapidly evolving landscape, %s continues to transform how creators work.\n\nWhat are your thoughts on %s? Share in the comments below!\n\n%s",
			p.Topic, p.Topic, p.Topic, hashtags(p.Topic))
	}

	return Result{
		Content:        body,
		ContentType:    p.ContentType,
		Platform:       platform,
		Topic:          p.Topic,
		CharacterCount: len(body),
		CreatedAt:      time.Now(),
	}, nil
}

// hashtags derives up to three tags from the topic text.
func hashtags(topic string) string {
	compact := strings.NewReplacer(" ", "", ",", "").Replace(topic)
	tags := []string{"#" + compact}

	lower := strings.ToLower(topic)
	if strings.Contains(lower, "business") {
		tags = append(tags, "#Business")
	}
	if strings.Contains(lower, "technology") {
		tags = append(tags, "#Tech")
	}
	if strings.Contains(lower, "marketing") {
		tags = append(tags, "#Marketing")
	}
	if len(tags) > 3 {
		tags = tags[:3]
	}
	return strings.Join(tags, " ")
}
