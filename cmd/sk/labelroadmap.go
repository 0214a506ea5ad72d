package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chase-seibert/chase-sidekick/internal/debug"
	"github.com/chase-seibert/chase-sidekick/internal/roadmap"
	"github.com/chase-seibert/chase-sidekick/internal/ui"
)

var labelRoadmapCmd = &cobra.Command{
	Use:   "label-roadmap ROOT",
	Short: "Apply roadmap ancestry labels below a root issue",
	Long: `Walk the hierarchy below a roadmap root (title prefixed like "C1" or
"C1.5.2") and add each issue's missing ancestry labels. With --dry-run the
planned labels are printed but nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		limit, _ := cmd.Flags().GetInt("limit")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		orch := &roadmap.Orchestrator{
			Repo:     repo,
			Project:  project,
			MaxDepth: maxDepth,
			DryRun:   dryRun,
			Limit:    limit,
			OnMessage: func(msg string) {
				debug.PrintNormal("%s\n", msg)
			},
			OnWarning: func(msg string) {
				fmt.Println(ui.RenderFail(msg))
			},
		}

		stats, err := orch.Run(rootCtx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			outputJSON(stats)
			return nil
		}
		fmt.Printf("\nProcessed: %d, Labeled: %d, Skipped: %d, Errors: %d\n",
			stats.Processed, stats.Labeled, stats.Skipped, stats.Errors)
		return nil
	},
}

func init() {
	labelRoadmapCmd.Flags().String("project", "", "Only follow cross-project links into this project")
	labelRoadmapCmd.Flags().Bool("dry-run", false, "Print planned labels without writing them")
	labelRoadmapCmd.Flags().Int("limit", 0, "Stop after labeling this many issues (0 = no limit)")
	labelRoadmapCmd.Flags().Int("max-depth", roadmap.DefaultMaxDepth, "Maximum traversal depth")
	rootCmd.AddCommand(labelRoadmapCmd)
}
