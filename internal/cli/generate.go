package cli

import (
	"fmt"

	"vidlearn/internal/bootstrap"
	"vidlearn/internal/config"
	"vidlearn/internal/domain"
	"vidlearn/internal/logger"
	"vidlearn/internal/service"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content for a video using the configured upstreams",
		RunE:  runGenerate,
	}

	cmd.Flags().StringP("kind", "k", "", "Content kind (required)")
	cmd.Flags().StringP("video", "v", "", "YouTube video id (required)")
	cmd.Flags().String("tier", "", "Quiz tier: quick or full")
	cmd.Flags().String("difficulty", "", "Target difficulty: easy, medium or hard")

	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("video")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	videoID, _ := cmd.Flags().GetString("video")
	tier, _ := cmd.Flags().GetString("tier")
	difficulty, _ := cmd.Flags().GetString("difficulty")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	comps, err := bootstrap.Build(cmd.Context(), cfg, logger.Get())
	if err != nil {
		return err
	}
	defer comps.Close()

	out, err := comps.Service.Generate(cmd.Context(), service.GenerateRequest{
		Kind:       kind,
		VideoID:    videoID,
		Tier:       domain.QuizTier(tier),
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, out)
}
