// Package config loads the agent's runtime configuration from an optional
// YAML file with environment overrides. A missing file is not an error;
// everything has a sensible default.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to wire the agent.
type Config struct {
	// KnowledgeBase is the path to the YAML/JSON knowledge tree.
	KnowledgeBase string `yaml:"knowledge_base"`
	// LeadsDB is the SQLite file for captured leads. Empty disables the
	// store; captures then go to the log sink.
	LeadsDB string `yaml:"leads_db"`
	// RetrievalLimit caps entries per inquiry retrieval.
	RetrievalLimit int `yaml:"retrieval_limit"`
	// Watch reloads the knowledge base when the file changes.
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		KnowledgeBase:  "knowledge_base/autostream.yaml",
		LeadsDB:        ".autostream/leads.db",
		RetrievalLimit: 5,
	}
}

// Load reads path (when it exists), applies env overrides, and validates.
// A missing file silently yields defaults; an unparsable file is an error,
// since a broken config is worth failing loudly over.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if cfg.RetrievalLimit <= 0 {
		cfg.RetrievalLimit = Default().RetrievalLimit
	}
	return cfg, nil
}

// applyEnv overrides fields from AUTOSTREAM_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("AUTOSTREAM_KNOWLEDGE_BASE"); v != "" {
		c.KnowledgeBase = v
	}
	if v := os.Getenv("AUTOSTREAM_LEADS_DB"); v != "" {
		c.LeadsDB = v
	}
	if v := os.Getenv("AUTOSTREAM_RETRIEVAL_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RetrievalLimit = n
		}
	}
	if v := os.Getenv("AUTOSTREAM_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Watch = b
		}
	}
}
