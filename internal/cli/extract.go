package cli

import (
	"vidlearn/internal/domain"
	"vidlearn/internal/extraction"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type extractOutput struct {
	Result *domain.ResultSet `json:"result"`
	Stats  extraction.Stats  `json:"stats"`
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run the offline pipeline on a saved model reply",
		RunE:  runExtract,
	}

	cmd.Flags().StringP("kind", "k", "", "Content kind (required)")
	cmd.Flags().StringP("file", "f", "-", "Reply file, - for stdin")
	cmd.Flags().IntP("max", "m", 0, "Maximum records (default: the kind's maximum)")
	cmd.Flags().Int64("seed", 0, "Seed for random defaults (0: time-seeded)")

	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")
	maxCount, _ := cmd.Flags().GetInt("max")
	seed, _ := cmd.Flags().GetInt64("seed")

	reply, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	var rnd extraction.RandomSource
	if seed != 0 {
		rnd = extraction.NewSeededSource(seed)
	}
	pipeline := extraction.NewPipeline(extraction.NewValidator(rnd), zap.NewNop())
	rs, stats, err := pipeline.Process(kind, reply, maxCount)
	if err != nil {
		return err
	}
	return printJSON(cmd, extractOutput{Result: rs, Stats: stats})
}
