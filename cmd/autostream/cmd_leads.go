package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autostream/internal/leads"
)

// leadsCmd lists captured leads from the configured store.
var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List captured leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.LeadsDB == "" {
			return fmt.Errorf("no leads database configured (set leads_db or --leads-db)")
		}

		store, err := leads.OpenStore(cfg.LeadsDB, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		all, err := store.List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No leads captured yet.")
			return nil
		}
		for _, l := range all {
			fmt.Printf("%s  %-16s %-28s %-10s\n",
				l.CapturedAt.Format("2006-01-02 15:04"), l.Name, l.Email, l.Platform)
		}
		fmt.Printf("%d lead(s)\n", len(all))
		return nil
	},
}
