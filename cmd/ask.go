package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winston-cli/winston/internal/llm"
)

func newAskCmd() *cobra.Command {
	askCmd := &cobra.Command{
		Use:   "ask \"your prompt\"",
		Short: "Send a single prompt and print the completion",
		Long: `Send one prompt to the completion API and print the response to stdout.

The generation parameters (model, max tokens, temperature, ...) are resolved
from flags, environment variables and the config file, in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	addGenerationFlags(askCmd)

	return askCmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	client := llm.NewClient(cfg)
	answer, err := client.Complete(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
