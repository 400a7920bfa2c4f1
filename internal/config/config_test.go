package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(missing) = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "knowledge_base: /tmp/kb.yaml\nleads_db: /tmp/leads.db\nretrieval_limit: 3\nwatch: true\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.KnowledgeBase != "/tmp/kb.yaml" || cfg.LeadsDB != "/tmp/leads.db" ||
		cfg.RetrievalLimit != 3 || !cfg.Watch {
		t.Fatalf("Load() = %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTOSTREAM_KNOWLEDGE_BASE", "/env/kb.yaml")
	t.Setenv("AUTOSTREAM_RETRIEVAL_LIMIT", "7")
	t.Setenv("AUTOSTREAM_WATCH", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.KnowledgeBase != "/env/kb.yaml" {
		t.Fatalf("KnowledgeBase = %q, want env override", cfg.KnowledgeBase)
	}
	if cfg.RetrievalLimit != 7 || !cfg.Watch {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_UnparsableIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("knowledge_base: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(unparsable) = nil error, want error")
	}
}

func TestLoad_ZeroLimitBackfilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("retrieval_limit: 0"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RetrievalLimit != Default().RetrievalLimit {
		t.Fatalf("RetrievalLimit = %d, want default", cfg.RetrievalLimit)
	}
}
