// Package cli implements the vidlearn command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"vidlearn/internal/domain"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the top-level command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vidlearn",
		Short:         "Turn video transcripts into study material",
		Long:          "Builds prompts, runs the extraction pipeline on saved model replies, and generates content for a YouTube video.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newExtractCmd(), newPromptCmd(), newGenerateCmd())
	return root
}

func kindFlag(cmd *cobra.Command) (domain.ContentKind, error) {
	raw, _ := cmd.Flags().GetString("kind")
	kind := domain.ContentKind(raw)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown kind %q", raw)
	}
	return kind, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
