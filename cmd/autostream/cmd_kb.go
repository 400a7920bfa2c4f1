package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"autostream/internal/knowledge"
)

// kbCmd queries the knowledge base directly, bypassing the dialogue layer.
// It shows the gate/score outcome per entry, which is the main thing worth
// inspecting when tuning knowledge content.
var kbCmd = &cobra.Command{
	Use:   "kb [query...]",
	Short: "Query the knowledge base and show ranked entries",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		tree := knowledge.Load(cfg.KnowledgeBase, logger)
		entries := knowledge.NewRetriever().Retrieve(query, tree, cfg.RetrievalLimit)

		if len(entries) == 0 {
			fmt.Println("No matching entries.")
			return nil
		}
		for i, e := range entries {
			fmt.Printf("%d. %-24s score=%.2f\n   %s\n", i+1, e.Key, e.Score, e.Content)
		}
		return nil
	},
}
