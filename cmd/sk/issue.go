package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Look up issues in the tracker",
}

var issueShowCmd = &cobra.Command{
	Use:   "show KEY",
	Short: "Show a single issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		item, err := repo.GetItem(rootCtx, args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			outputJSON(item)
			return nil
		}
		fmt.Println(formatItem(item))
		return nil
	},
}

var issueQueryCmd = &cobra.Command{
	Use:   "query JQL",
	Short: "Run a JQL query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max")
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		items, err := repo.QueryItems(rootCtx, args[0], maxResults)
		if err != nil {
			return err
		}
		printItems(items)
		return nil
	},
}

var issueChildrenCmd = &cobra.Command{
	Use:   "children PARENT",
	Short: "List the direct children of an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxResults, _ := cmd.Flags().GetInt("max")
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		jql := fmt.Sprintf("parent = %s", args[0])
		items, err := repo.QueryItems(rootCtx, jql, maxResults)
		if err != nil {
			return err
		}
		printItems(items)
		return nil
	},
}

var issueByLabelCmd = &cobra.Command{
	Use:   "by-label LABEL",
	Short: "List issues carrying a label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")
		maxResults, _ := cmd.Flags().GetInt("max")
		repo, err := newRepository()
		if err != nil {
			return err
		}
		defer reportAPIUsage(time.Now())

		jql := fmt.Sprintf("labels = %q", args[0])
		if project != "" {
			jql = fmt.Sprintf("%s AND project = %s", jql, project)
		}
		items, err := repo.QueryItems(rootCtx, jql, maxResults)
		if err != nil {
			return err
		}
		printItems(items)
		return nil
	},
}

func init() {
	issueQueryCmd.Flags().Int("max", 50, "Maximum number of results")
	issueChildrenCmd.Flags().Int("max", 100, "Maximum number of results")
	issueByLabelCmd.Flags().String("project", "", "Restrict to a project key")
	issueByLabelCmd.Flags().Int("max", 50, "Maximum number of results")

	issueCmd.AddCommand(issueShowCmd)
	issueCmd.AddCommand(issueQueryCmd)
	issueCmd.AddCommand(issueChildrenCmd)
	issueCmd.AddCommand(issueByLabelCmd)
	rootCmd.AddCommand(issueCmd)
}
