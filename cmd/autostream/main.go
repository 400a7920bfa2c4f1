// Command autostream is the console front-end for the AutoStream agent:
// an interactive chat by default, plus small utility subcommands for
// retrieval debugging, captured-lead inspection, and content drafting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"autostream/internal/agent"
	"autostream/internal/config"
	"autostream/internal/dialogue"
	"autostream/internal/knowledge"
	"autostream/internal/leads"
)

var (
	// Global flags
	cfgPath       string
	verbose       bool
	knowledgePath string
	leadsDBPath   string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "autostream",
	Short: "AutoStream - conversational lead-qualification agent",
	Long: `AutoStream is a scripted conversational agent for creator-tool sales.

It routes each user turn through intent classification, keyword retrieval
over a small knowledge base, and a multi-turn lead-qualification dialogue
that captures name, email, and platform exactly once per lead.

Run without arguments to start the interactive chat.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "autostream.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&knowledgePath, "knowledge", "", "knowledge base file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&leadsDBPath, "leads-db", "", "leads database file (overrides config)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(draftCmd)
}

// runtime bundles the wired collaborators for one CLI invocation.
type runtime struct {
	cfg          config.Config
	orchestrator *agent.Orchestrator
	store        *leads.Store
	watcher      *knowledge.Watcher
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	if knowledgePath != "" {
		cfg.KnowledgeBase = knowledgePath
	}
	if leadsDBPath != "" {
		cfg.LeadsDB = leadsDBPath
	}
	return cfg, nil
}

// buildRuntime wires the orchestrator with a knowledge provider and a
// capture sink per config. The caller must Close it.
func buildRuntime() (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}

	var provider knowledge.Provider
	if cfg.Watch {
		w, err := knowledge.NewWatcher(cfg.KnowledgeBase, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to watch knowledge base: %w", err)
		}
		rt.watcher = w
		provider = w.Provider()
	} else {
		provider = knowledge.Static(knowledge.Load(cfg.KnowledgeBase, logger))
	}

	var capture dialogue.CaptureFunc
	if cfg.LeadsDB != "" {
		store, err := leads.OpenStore(cfg.LeadsDB, logger)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("failed to open leads store: %w", err)
		}
		rt.store = store
		capture = store.Capture
	} else {
		capture = leads.NewLogSink(logger).Capture
	}

	rt.orchestrator = agent.New(agent.Options{
		Tree:           provider,
		Capture:        capture,
		RetrievalLimit: cfg.RetrievalLimit,
		Logger:         logger,
	})
	return rt, nil
}

func (r *runtime) Close() {
	if r.watcher != nil {
		_ = r.watcher.Close()
	}
	if r.store != nil {
		_ = r.store.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
