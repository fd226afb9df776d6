package cli

import (
	"fmt"

	"vidlearn/internal/extraction"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt built for a transcript",
		RunE:  runPrompt,
	}

	cmd.Flags().StringP("kind", "k", "", "Content kind (required)")
	cmd.Flags().StringP("file", "f", "-", "Transcript file, - for stdin")
	cmd.Flags().String("count", "", "Item count override")
	cmd.Flags().String("difficulty", "", "Target difficulty")

	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func runPrompt(cmd *cobra.Command, args []string) error {
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")
	count, _ := cmd.Flags().GetString("count")
	difficulty, _ := cmd.Flags().GetString("difficulty")

	transcript, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	prompt, err := extraction.BuildPrompt(kind, transcript, extraction.PromptOptions{Count: count, Difficulty: difficulty})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
	return err
}
