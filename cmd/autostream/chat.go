// Interactive chat loop: multi-turn conversation against one State, with
// meta-commands handled locally and everything else routed through the
// orchestrator.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"autostream/internal/dialogue"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chatMetaCommand is a console-level command that never reaches the agent.
type chatMetaCommand string

const (
	metaNone    chatMetaCommand = ""
	metaHelp    chatMetaCommand = "help"
	metaHistory chatMetaCommand = "history"
	metaClear   chatMetaCommand = "clear"
	metaQuit    chatMetaCommand = "quit"
)

// parseChatCommand maps console input to a meta-command, or metaNone when
// the input is a normal utterance for the agent.
func parseChatCommand(input string) chatMetaCommand {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "help", "?":
		return metaHelp
	case "history":
		return metaHistory
	case "clear":
		return metaClear
	case "exit", "quit", "bye":
		return metaQuit
	default:
		return metaNone
	}
}

func runChat() error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	rule := ruleStyle.Render(strings.Repeat("─", 60))
	fmt.Println(rule)
	fmt.Println(agentStyle.Render("AutoStream agent ready."))
	fmt.Println(infoStyle.Render("Commands: help, history, clear, exit"))
	fmt.Println(rule)

	var state *dialogue.State
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(promptStyle.Render("you> "))
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch parseChatCommand(input) {
		case metaQuit:
			fmt.Println(infoStyle.Render("Goodbye!"))
			return nil

		case metaHelp:
			printChatHelp()
			continue

		case metaHistory:
			printHistory(state)
			continue

		case metaClear:
			state = nil
			fmt.Println(infoStyle.Render("Conversation cleared."))
			continue
		}

		state = rt.orchestrator.RunTurn(input, state)

		if state.Err != "" {
			fmt.Println(errorStyle.Render("agent> " + state.Response))
		} else {
			fmt.Println(agentStyle.Render("agent> " + state.Response))
		}
		if verbose && state.Retrieved != nil && len(state.Retrieved.Sources) > 0 {
			fmt.Println(infoStyle.Render("sources: " + strings.Join(state.Retrieved.Sources, ", ")))
		}
	}
}

func printChatHelp() {
	fmt.Println(infoStyle.Render(`Commands:
  help      Show this help
  history   Show the conversation transcript
  clear     Start a fresh conversation
  exit      Leave the chat

Anything else is sent to the agent. Try:
  hi
  tell me about the Pro plan
  I want to try Pro for my YouTube channel`))
}

func printHistory(state *dialogue.State) {
	if state == nil || len(state.Transcript) == 0 {
		fmt.Println(infoStyle.Render("No conversation yet."))
		return
	}
	for _, msg := range state.Transcript {
		line := fmt.Sprintf("[%s] %s: %s",
			msg.Timestamp.Format("15:04:05"), msg.Speaker, msg.Content)
		if msg.Speaker == dialogue.SpeakerAgent {
			fmt.Println(agentStyle.Render(line))
		} else {
			fmt.Println(line)
		}
	}
}
