package knowledge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "kb.yaml", `
pricing:
  Basic:
    price: $29/month
  Pro:
    price: $79/month
policies:
  refund: 30-day money back guarantee.
`)

	tree := Load(path, zap.NewNop())
	if len(tree) != 2 {
		t.Fatalf("Load() categories = %d, want 2", len(tree))
	}
	pricing, ok := tree["pricing"].(map[string]any)
	if !ok {
		t.Fatalf("pricing category = %T, want map", tree["pricing"])
	}
	if _, ok := pricing["Pro"]; !ok {
		t.Fatal("pricing.Pro missing after load")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "kb.json", `{"pricing": {"Pro": {"price": "$79/month"}}}`)

	tree := Load(path, zap.NewNop())
	if _, ok := tree["pricing"]; !ok {
		t.Fatalf("Load(json) = %v, want pricing category", tree)
	}
}

func TestLoad_MissingFileDegradesToEmpty(t *testing.T) {
	tree := Load(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
	if tree == nil || len(tree) != 0 {
		t.Fatalf("Load(missing) = %v, want empty tree", tree)
	}
}

func TestLoad_UnparsableDegradesToEmpty(t *testing.T) {
	path := writeFile(t, "kb.yaml", "pricing: [unclosed\n  :::")

	tree := Load(path, zap.NewNop())
	if tree == nil || len(tree) != 0 {
		t.Fatalf("Load(unparsable) = %v, want empty tree", tree)
	}
}

func TestStatic_NilBecomesEmpty(t *testing.T) {
	p := Static(nil)
	if tree := p(); tree == nil || len(tree) != 0 {
		t.Fatalf("Static(nil)() = %v, want empty tree", tree)
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := writeFile(t, "kb.yaml", "pricing:\n  Basic:\n    price: $29\n")

	w, err := NewWatcher(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if _, ok := w.Snapshot()["pricing"]; !ok {
		t.Fatal("initial snapshot missing pricing category")
	}

	if err := os.WriteFile(path, []byte("policies:\n  refund: full refund\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := w.Snapshot()["policies"]; ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("snapshot not reloaded after file change")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
