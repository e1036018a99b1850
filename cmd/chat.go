package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winston-cli/winston/internal/llm"
)

func newChatCmd() *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with the configured model.

Each turn carries the full conversation history. Type /quit (or press
Ctrl-D) to end the session. Chat requires a terminal; for piped input use
'winston ask' instead.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	addGenerationFlags(chatCmd)

	return chatCmd
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	return chatLoop(cmd.Context(), llm.NewClient(cfg), llm.NewIOStreams())
}

// completer is the slice of llm.Client the chat loop needs; tests inject a
// scripted implementation.
type completer interface {
	Chat(ctx context.Context, history []llm.Message) (string, error)
}

func chatLoop(ctx context.Context, client completer, streams *llm.IOStreams) error {
	if !streams.IsInteractive() {
		return fmt.Errorf("chat requires a terminal; pipe your prompt through 'winston ask' instead")
	}

	fmt.Fprintln(streams.Out, "winston chat (/quit to exit)")

	var history []llm.Message
	scanner := bufio.NewScanner(streams.In)
	for {
		fmt.Fprint(streams.Out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		history = append(history, llm.Message{Role: llm.RoleUser, Content: line})
		reply, err := client.Chat(ctx, history)
		if err != nil {
			return err
		}
		history = append(history, llm.Message{Role: llm.RoleAssistant, Content: reply})

		fmt.Fprintln(streams.Out, reply)
	}

	return scanner.Err()
}
