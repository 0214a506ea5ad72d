package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chase-seibert/chase-sidekick/internal/roadmap"
	"github.com/chase-seibert/chase-sidekick/internal/ui"
)

var treeCmd = &cobra.Command{
	Use:   "tree ROOT",
	Short: "Render an issue hierarchy as a tree",
	Long: `Walk the parent/child and link graph below an issue and print it as an
indented tree. Children connect with ` + "`├─`" + `, linked issues with ` + "`├~>`" + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		issueType, _ := cmd.Flags().GetString("type")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		traverser := roadmap.NewTraverser(repo, roadmap.Options{
			Project:  project,
			Type:     issueType,
			MaxDepth: maxDepth,
		})

		if jsonOutput {
			var nodes []roadmap.Node
			err := traverser.Walk(rootCtx, args[0], func(n roadmap.Node) error {
				nodes = append(nodes, n)
				return nil
			})
			if err != nil {
				return err
			}
			outputJSON(nodes)
			return nil
		}

		total := 0
		err = traverser.Walk(rootCtx, args[0], func(n roadmap.Node) error {
			fmt.Println(treeLine(n))
			total++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", ui.RenderMuted(fmt.Sprintf("%d issues", total)))
		return nil
	},
}

// treeLine renders one traversal node with depth indentation and the
// connector glyph for its relationship to the parent.
func treeLine(n roadmap.Node) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(ui.TreeIndent, n.Depth))
	switch n.Relationship {
	case roadmap.RelLinked:
		b.WriteString(ui.TreeLinked)
	case roadmap.RelChild:
		b.WriteString(ui.TreeChild)
	}
	b.WriteString(formatItem(n.Item))
	return b.String()
}

func init() {
	treeCmd.Flags().String("project", "", "Only follow cross-project links into this project")
	treeCmd.Flags().String("type", "", "Only report issues of this type")
	treeCmd.Flags().Int("max-depth", roadmap.DefaultMaxDepth, "Maximum traversal depth")
	rootCmd.AddCommand(treeCmd)
}
