package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd runs a single turn against a fresh conversation and prints the
// response. Useful for scripting and smoke checks.
var askCmd = &cobra.Command{
	Use:   "ask [text...]",
	Short: "Send one utterance and print the agent's response",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := buildRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		state := rt.orchestrator.RunTurn(strings.Join(args, " "), nil)
		fmt.Println(state.Response)

		if verbose {
			fmt.Printf("intent: %s  stage: %s\n", state.Intent, state.Stage)
			if state.Retrieved != nil && len(state.Retrieved.Sources) > 0 {
				fmt.Println("sources:", strings.Join(state.Retrieved.Sources, ", "))
			}
		}
		if state.Err != "" {
			return fmt.Errorf("turn error: %s", state.Err)
		}
		return nil
	},
}
